package queue

import (
	"github.com/mcoot/courtqueue/internal/model"
)

// HandleGameWinner finishes the current game. The winner stays on and
// always moves to slot A; the loser goes to the literal end of the team
// list; the first waiting team takes slot B, or B is left empty when
// nobody is waiting.
//
// It is a no-op unless both slots are filled and winnerID holds one of them.
// The input is never modified.
func HandleGameWinner(s *model.GameState, winnerID model.TeamID) *model.GameState {
	out := s.Clone()
	g := out.CurrentGame
	if !g.IsComplete() || !g.Has(winnerID) {
		return normalize(out)
	}

	loserID := g.TeamA
	if g.TeamA == winnerID {
		loserID = g.TeamB
	}
	if out.GetTeam(winnerID) == nil || out.GetTeam(loserID) == nil {
		return normalize(out)
	}

	var next model.TeamID
	if t := NextTeam(out); t != nil {
		next = t.ID
	}

	teams := make([]model.Team, 0, len(out.Teams))
	var loser model.Team
	for _, t := range out.Teams {
		if t.ID == loserID {
			loser = t
			continue
		}
		teams = append(teams, t)
	}
	out.Teams = append(teams, loser)
	out.CurrentGame = model.CurrentGame{TeamA: winnerID, TeamB: next}

	return normalize(out)
}

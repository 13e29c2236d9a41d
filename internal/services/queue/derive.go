package queue

import (
	"github.com/samber/lo"

	"github.com/mcoot/courtqueue/internal/model"
)

// normalize restores the derived parts of a state in place and returns it:
//   - team members are re-read from Players; unknown ids are dropped and a
//     player belongs to at most one team (the first that lists them)
//   - slots naming a missing team are cleared, and B is cleared if equal to A
//   - UnassignedPlayers is recomputed
func normalize(s *model.GameState) *model.GameState {
	if s.Players == nil {
		s.Players = []model.Player{}
	}
	if s.Teams == nil {
		s.Teams = []model.Team{}
	}

	registered := lo.KeyBy(s.Players, func(p model.Player) model.PlayerID { return p.ID })
	seen := make(map[model.PlayerID]bool)
	for i := range s.Teams {
		members := make([]model.Player, 0, len(s.Teams[i].Players))
		for _, p := range s.Teams[i].Players {
			current, ok := registered[p.ID]
			if !ok || seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			members = append(members, current)
		}
		s.Teams[i].Players = members
	}

	g := &s.CurrentGame
	if s.GetTeam(g.TeamA) == nil {
		g.TeamA = ""
	}
	if s.GetTeam(g.TeamB) == nil || g.TeamB == g.TeamA {
		g.TeamB = ""
	}

	s.UnassignedPlayers = s.Unassigned()
	return s
}

// isEligible reports whether a team may be pulled into the current game:
// it has players and holds no slot
func isEligible(s *model.GameState, t model.Team) bool {
	return len(t.Players) > 0 && !s.IsPlaying(t.ID)
}

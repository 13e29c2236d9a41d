package queue

import (
	"github.com/samber/lo"

	"github.com/mcoot/courtqueue/internal/model"
)

// InitializeGame fills empty current-game slots from the queue, in queue
// order. Both empty slots are filled when two teams are waiting; otherwise
// the first empty slot (A before B) takes the first waiting team. A state
// with no empty slot or no waiting team comes back unchanged, so calling it
// twice is the same as calling it once. The input is never modified.
func InitializeGame(s *model.GameState) *model.GameState {
	out := s.Clone()
	available := lo.Filter(out.Teams, func(t model.Team, _ int) bool {
		return isEligible(out, t)
	})

	g := &out.CurrentGame
	switch {
	case g.IsEmpty() && len(available) >= 2:
		g.TeamA = available[0].ID
		g.TeamB = available[1].ID
	case g.TeamA == "" && len(available) >= 1:
		g.TeamA = available[0].ID
	case g.TeamB == "" && len(available) >= 1:
		g.TeamB = available[0].ID
	}

	return normalize(out)
}

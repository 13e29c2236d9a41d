package queue

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/courtqueue/internal/model"
)

// Game lengths by court load
const (
	LongGameLength  = 10 * time.Minute
	ShortGameLength = 8 * time.Minute

	// Courts with at most this many teams play long games
	longGameMaxTeams = 3
)

// Direction is a one-step move within the queue
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Queue returns the waiting line: teams with players that hold no slot,
// in queue order
func Queue(s *model.GameState) []model.Team {
	return lo.Filter(s.Teams, func(t model.Team, _ int) bool {
		return isEligible(s, t)
	})
}

// NextTeam returns the team at the front of the queue, or nil
func NextTeam(s *model.GameState) *model.Team {
	for i := range s.Teams {
		if isEligible(s, s.Teams[i]) {
			return &s.Teams[i]
		}
	}
	return nil
}

// SearchQueue returns the waiting teams whose name, or any member's name,
// contains query, ignoring case. An empty query matches every waiting team.
func SearchQueue(s *model.GameState, query string) []model.Team {
	q := strings.ToLower(strings.TrimSpace(query))
	return lo.Filter(Queue(s), func(t model.Team, _ int) bool {
		if strings.Contains(strings.ToLower(t.Name), q) {
			return true
		}
		return lo.ContainsBy(t.Players, func(p model.Player) bool {
			return strings.Contains(strings.ToLower(p.Name), q)
		})
	})
}

// GameLength is how long a game should run given how busy the court is
func GameLength(s *model.GameState) time.Duration {
	if len(s.Teams) <= longGameMaxTeams {
		return LongGameLength
	}
	return ShortGameLength
}

// MoveTeam returns the team order that results from swapping a waiting
// team with its neighbour in the queue. Teams that are playing or empty
// keep their positions.
func MoveTeam(s *model.GameState, id model.TeamID, dir Direction) ([]model.TeamID, error) {
	if s.GetTeam(id) == nil {
		return nil, model.ErrTeamNotFound
	}
	waiting := Queue(s)
	_, pos, ok := lo.FindIndexOf(waiting, func(t model.Team) bool { return t.ID == id })
	if !ok {
		return nil, model.ErrTeamNotQueued
	}

	var other model.TeamID
	switch {
	case dir == DirectionUp && pos > 0:
		other = waiting[pos-1].ID
	case dir == DirectionDown && pos < len(waiting)-1:
		other = waiting[pos+1].ID
	default:
		return nil, model.ErrInvalidMove
	}

	order := TeamOrder(s)
	i := lo.IndexOf(order, id)
	j := lo.IndexOf(order, other)
	order[i], order[j] = order[j], order[i]
	return order, nil
}

// TeamOrder returns the ids of every team in queue order
func TeamOrder(s *model.GameState) []model.TeamID {
	return lo.Map(s.Teams, func(t model.Team, _ int) model.TeamID { return t.ID })
}

// RandomTeamPlayers picks the players for a quick team: the first
// MaxTeamSize unassigned players in registration order
func RandomTeamPlayers(s *model.GameState) []model.PlayerID {
	unassigned := s.Unassigned()
	if len(unassigned) > model.MaxTeamSize {
		unassigned = unassigned[:model.MaxTeamSize]
	}
	return lo.Map(unassigned, func(p model.Player, _ int) model.PlayerID { return p.ID })
}

package queue

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mcoot/courtqueue/internal/model"
)

func player(id, name string) model.Player {
	return model.Player{ID: model.PlayerID(id), Name: name}
}

func team(id, name string, players ...model.Player) model.Team {
	return model.Team{ID: model.TeamID(id), Name: name, Players: players}
}

// court builds a normalized state from the given teams; every team member
// is registered, followed by any extra unassigned players
func court(slotA, slotB string, teams []model.Team, unassigned ...model.Player) *model.GameState {
	s := model.NewGameState()
	for _, t := range teams {
		s.Players = append(s.Players, t.Players...)
	}
	s.Players = append(s.Players, unassigned...)
	s.Teams = append(s.Teams, teams...)
	s.CurrentGame = model.CurrentGame{TeamA: model.TeamID(slotA), TeamB: model.TeamID(slotB)}
	return normalize(s)
}

func teamIDs(teams []model.Team) []model.TeamID {
	out := make([]model.TeamID, len(teams))
	for i, t := range teams {
		out[i] = t.ID
	}
	return out
}

func playerIDs(players []model.Player) []model.PlayerID {
	out := make([]model.PlayerID, len(players))
	for i, p := range players {
		out[i] = p.ID
	}
	return out
}

// stateDiff compares two states treating nil and empty slices as equal
func stateDiff(want, got *model.GameState) string {
	return cmp.Diff(want, got, cmpopts.EquateEmpty())
}

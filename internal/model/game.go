package model

import (
	"time"

	"github.com/samber/lo"
)

// CurrentGame holds the two active-game slots. An empty TeamID means the
// slot is empty.
type CurrentGame struct {
	TeamA TeamID
	TeamB TeamID
}

// Has reports whether the team occupies either slot
func (g CurrentGame) Has(id TeamID) bool {
	return id != "" && (g.TeamA == id || g.TeamB == id)
}

// IsComplete reports whether both slots are filled
func (g CurrentGame) IsComplete() bool {
	return g.TeamA != "" && g.TeamB != ""
}

// IsEmpty reports whether neither slot is filled
func (g CurrentGame) IsEmpty() bool {
	return g.TeamA == "" && g.TeamB == ""
}

// GameState is the aggregate root: everything the court needs to know.
type GameState struct {
	Players []Player // registration order
	Teams   []Team   // queue order

	CurrentGame CurrentGame

	// UnassignedPlayers is derived: Players minus every team member.
	// It is recomputed after every transition and never trusted as input.
	UnassignedPlayers []Player

	// Snapshot metadata, maintained by the session controller
	Version   int64
	UpdatedAt time.Time
}

// NewGameState returns an empty aggregate
func NewGameState() *GameState {
	return &GameState{
		Players:           []Player{},
		Teams:             []Team{},
		UnassignedPlayers: []Player{},
	}
}

// IsPlaying reports whether the team is in slot A or slot B
func (s *GameState) IsPlaying(id TeamID) bool {
	return s.CurrentGame.Has(id)
}

// GetPlayer returns the player with the given id, or nil
func (s *GameState) GetPlayer(id PlayerID) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// GetTeam returns the team with the given id, or nil
func (s *GameState) GetTeam(id TeamID) *Team {
	if id == "" {
		return nil
	}
	for i := range s.Teams {
		if s.Teams[i].ID == id {
			return &s.Teams[i]
		}
	}
	return nil
}

// TeamA returns the team in slot A, or nil when the slot is empty
func (s *GameState) TeamA() *Team {
	return s.GetTeam(s.CurrentGame.TeamA)
}

// TeamB returns the team in slot B, or nil when the slot is empty
func (s *GameState) TeamB() *Team {
	return s.GetTeam(s.CurrentGame.TeamB)
}

// Unassigned returns the players, in registration order, that are not a
// member of any team
func (s *GameState) Unassigned() []Player {
	assigned := make(map[PlayerID]bool)
	for _, t := range s.Teams {
		for _, p := range t.Players {
			assigned[p.ID] = true
		}
	}
	return lo.Filter(s.Players, func(p Player, _ int) bool {
		return !assigned[p.ID]
	})
}

// TeamOf returns the team the player belongs to, or nil if unassigned
func (s *GameState) TeamOf(id PlayerID) *Team {
	for i := range s.Teams {
		if s.Teams[i].HasPlayer(id) {
			return &s.Teams[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the state
func (s *GameState) Clone() *GameState {
	out := &GameState{
		Players:           append([]Player{}, s.Players...),
		Teams:             make([]Team, len(s.Teams)),
		CurrentGame:       s.CurrentGame,
		UnassignedPlayers: append([]Player{}, s.UnassignedPlayers...),
		Version:           s.Version,
		UpdatedAt:         s.UpdatedAt,
	}
	for i, t := range s.Teams {
		out.Teams[i] = t.Clone()
	}
	return out
}

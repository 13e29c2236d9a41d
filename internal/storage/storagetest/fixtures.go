// Package storagetest holds fixtures shared by the storage backend tests.
package storagetest

import (
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mcoot/courtqueue/internal/model"
)

// Court returns a snapshot that exercises every part of the schema: a full
// current game, a waiting team, an empty placeholder team and an
// unassigned player.
func Court() *model.GameState {
	ana := model.Player{ID: "p-ana", Name: "Ana"}
	beto := model.Player{ID: "p-beto", Name: "Beto"}
	caio := model.Player{ID: "p-caio", Name: "Caio"}
	duda := model.Player{ID: "p-duda", Name: "Duda"}
	eva := model.Player{ID: "p-eva", Name: "Eva"}

	return &model.GameState{
		Players: []model.Player{ana, beto, caio, duda, eva},
		Teams: []model.Team{
			{ID: "t-2", Name: "Dunkers", Players: []model.Player{caio}},
			{ID: "t-1", Name: "AB Squad", Players: []model.Player{beto, ana}},
			{ID: "t-3", Name: "Ghosts", Players: []model.Player{}},
			{ID: "t-4", Name: "D Crew", Players: []model.Player{duda}},
		},
		CurrentGame:       model.CurrentGame{TeamA: "t-1", TeamB: "t-2"},
		UnassignedPlayers: []model.Player{eva},
		Version:           3,
		UpdatedAt:         time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// RequireSameCourt fails the test unless got holds the same court as want.
// Timestamps are compared as instants.
func RequireSameCourt(t require.TestingT, want, got *model.GameState) {
	require.Equal(t, want.Players, got.Players)
	require.Equal(t, want.Teams, got.Teams)
	require.Equal(t, want.CurrentGame, got.CurrentGame)
	require.Equal(t, want.UnassignedPlayers, got.UnassignedPlayers)
	require.Equal(t, want.Version, got.Version)
	require.True(t, want.UpdatedAt.Equal(got.UpdatedAt), "updated_at %v != %v", want.UpdatedAt, got.UpdatedAt)
}

package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/courtqueue/internal/model"
)

func TestValidate(t *testing.T) {
	s := busyCourt()

	tests := []struct {
		name   string
		action Action
		want   error
	}{
		{"add player", AddPlayer{Name: "Gabi"}, nil},
		{"add player blank name", AddPlayer{Name: "   "}, model.ErrEmptyName},
		{"add player duplicate name", AddPlayer{Name: " ana "}, model.ErrDuplicatePlayerName},
		{"add player duplicate id", AddPlayer{ID: "p1", Name: "Gabi"}, model.ErrDuplicatePlayerName},
		{"remove player", RemovePlayer{PlayerID: "p1"}, nil},
		{"remove unknown player", RemovePlayer{PlayerID: "nope"}, model.ErrPlayerNotFound},
		{"create team", CreateTeam{PlayerIDs: []model.PlayerID{"p7"}}, nil},
		{"create team no players", CreateTeam{}, model.ErrTeamHasNoPlayers},
		{"create team too large", CreateTeam{PlayerIDs: []model.PlayerID{"p1", "p2", "p4", "p7"}}, model.ErrTeamTooLarge},
		{"create team assigned player", CreateTeam{PlayerIDs: []model.PlayerID{"p1"}}, model.ErrPlayerAlreadyAssigned},
		{"create team unknown player", CreateTeam{PlayerIDs: []model.PlayerID{"nope"}}, model.ErrPlayerNotFound},
		{"create team repeated player", CreateTeam{PlayerIDs: []model.PlayerID{"p7", "p7"}}, model.ErrDuplicateTeamMember},
		{"edit team keeps members", EditTeam{TeamID: "t4", PlayerIDs: []model.PlayerID{"p4", "p7"}}, nil},
		{"edit team to empty", EditTeam{TeamID: "t4"}, nil},
		{"edit team steals player", EditTeam{TeamID: "t4", PlayerIDs: []model.PlayerID{"p6"}}, model.ErrPlayerAlreadyAssigned},
		{"edit unknown team", EditTeam{TeamID: "nope"}, model.ErrTeamNotFound},
		{"remove team", RemoveTeam{TeamID: "t3"}, nil},
		{"remove unknown team", RemoveTeam{TeamID: "nope"}, model.ErrTeamNotFound},
		{"set winner", SetWinner{TeamID: "t2"}, nil},
		{"set winner not in game", SetWinner{TeamID: "t4"}, model.ErrWinnerNotInGame},
		{"reorder", Reorder{TeamIDs: []model.TeamID{"t5", "t4", "t3", "t2", "t1"}}, nil},
		{"reorder missing team", Reorder{TeamIDs: []model.TeamID{"t5", "t4", "t3", "t2"}}, model.ErrInvalidTeamOrder},
		{"reorder repeated team", Reorder{TeamIDs: []model.TeamID{"t5", "t4", "t3", "t2", "t2"}}, model.ErrInvalidTeamOrder},
		{"reorder unknown team", Reorder{TeamIDs: []model.TeamID{"t5", "t4", "t3", "t2", "t9"}}, model.ErrInvalidTeamOrder},
		{"swap players", SwapPlayers{First: "p1", Second: "p7"}, nil},
		{"swap same player", SwapPlayers{First: "p1", Second: "p1"}, model.ErrDuplicateTeamMember},
		{"swap unknown player", SwapPlayers{First: "p1", Second: "nope"}, model.ErrPlayerNotFound},
		{"start game", StartGame{}, nil},
		{"replace", InitializeOrReplace{}, nil},
		{"reset", Reset{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(s, tt.action)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateSnapshot(t *testing.T) {
	snapshot := func(players []model.Player, teams ...model.Team) InitializeOrReplace {
		s := model.NewGameState()
		s.Players = players
		s.Teams = teams
		return InitializeOrReplace{State: s}
	}
	ana, beto, caio, duda := player("p1", "Ana"), player("p2", "Beto"), player("p3", "Caio"), player("p4", "Duda")
	everyone := []model.Player{ana, beto, caio, duda}

	tests := []struct {
		name   string
		action Action
		want   error
	}{
		{"valid", snapshot(everyone, team("t1", "One", ana, beto, caio), team("t2", "Two", duda)), nil},
		{"empty team", snapshot(everyone, team("t1", "One")), nil},
		{"team too large", snapshot(everyone, team("big", "Big", ana, beto, caio, duda)), model.ErrTeamTooLarge},
		{"repeated team id", snapshot(everyone, team("x", "One", ana), team("x", "Two", beto)), model.ErrDuplicateID},
		{"blank team id", snapshot(everyone, team("", "One", ana)), model.ErrMissingID},
		{"blank team name", snapshot(everyone, team("t1", " ", ana)), model.ErrEmptyName},
		{"repeated player id", snapshot([]model.Player{ana, player("p1", "Other")}), model.ErrDuplicateID},
		{"blank player id", snapshot([]model.Player{player("", "Ana")}), model.ErrMissingID},
		{"blank player name", snapshot([]model.Player{player("p1", "")}), model.ErrEmptyName},
		{"names equal after folding", snapshot([]model.Player{ana, player("p2", " ANA ")}), model.ErrDuplicatePlayerName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(model.NewGameState(), tt.action)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateSetWinnerWithoutCompleteGame(t *testing.T) {
	s := court("t1", "", []model.Team{team("t1", "One", player("p1", "A"))})

	assert.ErrorIs(t, Validate(s, SetWinner{TeamID: "t1"}), model.ErrNoCompleteGame)
}

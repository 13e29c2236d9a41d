package request

import (
	"github.com/mcoot/courtqueue/internal/model"
)

// LoginRequest is the request body for logging in as admin
type LoginRequest struct {
	Password string `json:"password"`
}

// AddPlayerRequest is the request body for registering a player
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// TeamRequest is the request body for creating or editing a team. An empty
// name means generate one on create and keep the current one on edit.
type TeamRequest struct {
	Name      string   `json:"name,omitempty"`
	PlayerIDs []string `json:"player_ids"`
}

// MemberIDs converts the member ids to model ids
func (r TeamRequest) MemberIDs() []model.PlayerID {
	return PlayerIDs(r.PlayerIDs)
}

// MoveTeamRequest is the request body for moving a team within the queue
type MoveTeamRequest struct {
	Direction string `json:"direction"`
}

// ReorderRequest is the request body for replacing the queue order
type ReorderRequest struct {
	TeamIDs []string `json:"team_ids"`
}

// WinnerRequest is the request body for finishing the current game
type WinnerRequest struct {
	TeamID string `json:"team_id"`
}

// ResetRequest is the request body for wiping the court
type ResetRequest struct {
	Password string `json:"password"`
}

// StatePlayer is a player in an imported snapshot
type StatePlayer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StateTeam is a team in an imported snapshot
type StateTeam struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	PlayerIDs []string `json:"player_ids"`
}

// StateGame is the current game in an imported snapshot
type StateGame struct {
	TeamA string `json:"team_a,omitempty"`
	TeamB string `json:"team_b,omitempty"`
}

// ReplaceStateRequest is the request body for importing a whole court
type ReplaceStateRequest struct {
	Players     []StatePlayer `json:"players"`
	Teams       []StateTeam   `json:"teams"`
	CurrentGame StateGame     `json:"current_game"`
}

// ToModel builds the snapshot to import. Member ids that name no player
// are dropped; the engine normalizes everything else.
func (r ReplaceStateRequest) ToModel() *model.GameState {
	s := model.NewGameState()
	for _, p := range r.Players {
		s.Players = append(s.Players, model.Player{ID: model.PlayerID(p.ID), Name: p.Name})
	}
	for _, t := range r.Teams {
		team := model.Team{ID: model.TeamID(t.ID), Name: t.Name, Players: []model.Player{}}
		for _, id := range t.PlayerIDs {
			if p := s.GetPlayer(model.PlayerID(id)); p != nil {
				team.Players = append(team.Players, *p)
			}
		}
		s.Teams = append(s.Teams, team)
	}
	s.CurrentGame = model.CurrentGame{
		TeamA: model.TeamID(r.CurrentGame.TeamA),
		TeamB: model.TeamID(r.CurrentGame.TeamB),
	}
	return s
}

// PlayerIDs converts raw ids to model ids
func PlayerIDs(ids []string) []model.PlayerID {
	out := make([]model.PlayerID, len(ids))
	for i, id := range ids {
		out[i] = model.PlayerID(id)
	}
	return out
}

// TeamIDs converts raw ids to model ids
func TeamIDs(ids []string) []model.TeamID {
	out := make([]model.TeamID, len(ids))
	for i, id := range ids {
		out[i] = model.TeamID(id)
	}
	return out
}

// SwapPlayersRequest is the request body for exchanging two players' teams
type SwapPlayersRequest struct {
	First  string `json:"first_player_id"`
	Second string `json:"second_player_id"`
}

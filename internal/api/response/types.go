package response

import (
	"time"

	"github.com/mcoot/courtqueue/internal/model"
	"github.com/mcoot/courtqueue/internal/services/auth"
	"github.com/mcoot/courtqueue/internal/services/queue"
)

// Player represents a player in API responses
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TeamID    string `json:"team_id,omitempty"`
	IsPlaying bool   `json:"is_playing"`
}

// PlayerFromModel converts a model.Player, resolving its team within s
func PlayerFromModel(s *model.GameState, p model.Player) Player {
	out := Player{
		ID:   string(p.ID),
		Name: p.Name,
	}
	if t := s.TeamOf(p.ID); t != nil {
		out.TeamID = string(t.ID)
		out.IsPlaying = s.IsPlaying(t.ID)
	}
	return out
}

// PlayersFromModel converts a list of players
func PlayersFromModel(s *model.GameState, players []model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(s, p)
	}
	return out
}

// Team represents a team in API responses
type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Players   []Player `json:"players"`
	IsPlaying bool     `json:"is_playing"`
	// QueuePosition is 1-based among waiting teams, 0 when not waiting
	QueuePosition int `json:"queue_position,omitempty"`
}

// TeamFromModel converts a model.Team
func TeamFromModel(s *model.GameState, t model.Team) Team {
	out := Team{
		ID:        string(t.ID),
		Name:      t.Name,
		Players:   PlayersFromModel(s, t.Players),
		IsPlaying: s.IsPlaying(t.ID),
	}
	for i, waiting := range queue.Queue(s) {
		if waiting.ID == t.ID {
			out.QueuePosition = i + 1
			break
		}
	}
	return out
}

// TeamsFromModel converts a list of teams
func TeamsFromModel(s *model.GameState, teams []model.Team) []Team {
	out := make([]Team, len(teams))
	for i, t := range teams {
		out[i] = TeamFromModel(s, t)
	}
	return out
}

// Game represents the current game in API responses
type Game struct {
	TeamA             *Team `json:"team_a"`
	TeamB             *Team `json:"team_b"`
	InProgress        bool  `json:"in_progress"`
	NextTeam          *Team `json:"next_team"`
	GameLengthMinutes int   `json:"game_length_minutes"`
	WaitingTeamCount  int   `json:"waiting_team_count"`
}

// GameFromModel builds the current game view of s
func GameFromModel(s *model.GameState) Game {
	return Game{
		TeamA:             optionalTeam(s, s.TeamA()),
		TeamB:             optionalTeam(s, s.TeamB()),
		InProgress:        s.CurrentGame.IsComplete(),
		NextTeam:          optionalTeam(s, queue.NextTeam(s)),
		GameLengthMinutes: int(queue.GameLength(s) / time.Minute),
		WaitingTeamCount:  len(queue.Queue(s)),
	}
}

func optionalTeam(s *model.GameState, t *model.Team) *Team {
	if t == nil {
		return nil
	}
	out := TeamFromModel(s, *t)
	return &out
}

// State represents the whole court in API responses
type State struct {
	Players           []Player  `json:"players"`
	Teams             []Team    `json:"teams"`
	UnassignedPlayers []Player  `json:"unassigned_players"`
	CurrentGame       Game      `json:"current_game"`
	Version           int64     `json:"version"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// StateFromModel converts a model.GameState
func StateFromModel(s *model.GameState) State {
	return State{
		Players:           PlayersFromModel(s, s.Players),
		Teams:             TeamsFromModel(s, s.Teams),
		UnassignedPlayers: PlayersFromModel(s, s.UnassignedPlayers),
		CurrentGame:       GameFromModel(s),
		Version:           s.Version,
		UpdatedAt:         s.UpdatedAt,
	}
}

// Queue is the waiting line in API responses
type Queue struct {
	Teams []Team `json:"teams"`
	Query string `json:"query,omitempty"`
}

// AuthResponse is the response for a successful login
type AuthResponse struct {
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		SessionToken: s.Token,
		ExpiresAt:    s.ExpiresAt,
	}
}

// Event is the JSON data of a server-sent event
type Event struct {
	Type      string    `json:"type"`
	Version   int64     `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action,omitempty"`
	State     *State    `json:"state,omitempty"`
	WinnerID  string    `json:"winner_id,omitempty"`
	LoserID   string    `json:"loser_id,omitempty"`
	NextID    string    `json:"next_id,omitempty"`
}

// EventFromModel flattens a model.Event and its payload
func EventFromModel(e model.Event) Event {
	out := Event{
		Type:      string(e.Type),
		Version:   e.Version,
		Timestamp: e.Timestamp,
	}
	switch p := e.Payload.(type) {
	case model.StateChangedPayload:
		out.Action = p.Action
		if p.State != nil {
			state := StateFromModel(p.State)
			out.State = &state
		}
	case model.GameFinishedPayload:
		out.WinnerID = string(p.WinnerID)
		out.LoserID = string(p.LoserID)
		out.NextID = string(p.NextID)
	}
	return out
}

// PlayerList is the response for listing players
type PlayerList struct {
	Players    []Player `json:"players"`
	Unassigned []Player `json:"unassigned"`
}

// TeamList is the response for listing teams
type TeamList struct {
	Teams []Team `json:"teams"`
}

package queue

import "github.com/mcoot/courtqueue/internal/model"

// Action is one of the closed set of transitions Engine.Apply understands.
// The unexported marker keeps the set closed to this package.
type Action interface {
	// Kind is a stable snake_case identifier used in logs and events
	Kind() string
	isAction()
}

// AddPlayer registers a new player. ID is generated when empty.
type AddPlayer struct {
	ID   model.PlayerID
	Name string
}

// RemovePlayer deletes a player, strips them from every team and clears any
// current-game slot held by their team.
type RemovePlayer struct {
	PlayerID model.PlayerID
}

// CreateTeam groups unassigned players into a new team at the back of the
// queue. An empty Name is replaced by a generated one. ID is generated when
// empty.
type CreateTeam struct {
	ID        model.TeamID
	PlayerIDs []model.PlayerID
	Name      string
}

// EditTeam replaces a team's members. A non-empty Name also renames it.
type EditTeam struct {
	TeamID    model.TeamID
	PlayerIDs []model.PlayerID
	Name      string
}

// RemoveTeam deletes a team and returns its members to the unassigned pool
type RemoveTeam struct {
	TeamID model.TeamID
}

// SetWinner finishes the current game in favour of TeamID
type SetWinner struct {
	TeamID model.TeamID
}

// Reorder replaces the team order wholesale. TeamIDs must list every team
// exactly once.
type Reorder struct {
	TeamIDs []model.TeamID
}

// SwapPlayers exchanges the team positions of two players. Swapping with an
// unassigned player moves the other player out of their team.
type SwapPlayers struct {
	First  model.PlayerID
	Second model.PlayerID
}

// StartGame fills any empty current-game slot from the queue
type StartGame struct{}

// InitializeOrReplace replaces the whole aggregate, e.g. with a freshly
// loaded or externally changed snapshot. A nil State means empty.
type InitializeOrReplace struct {
	State *model.GameState
}

// Reset wipes every player, team and the current game
type Reset struct{}

func (AddPlayer) Kind() string           { return "add_player" }
func (RemovePlayer) Kind() string        { return "remove_player" }
func (CreateTeam) Kind() string          { return "create_team" }
func (EditTeam) Kind() string            { return "edit_team" }
func (RemoveTeam) Kind() string          { return "remove_team" }
func (SetWinner) Kind() string           { return "set_winner" }
func (Reorder) Kind() string             { return "reorder" }
func (SwapPlayers) Kind() string         { return "swap_players" }
func (StartGame) Kind() string           { return "start_game" }
func (InitializeOrReplace) Kind() string { return "initialize_or_replace" }
func (Reset) Kind() string               { return "reset" }

func (AddPlayer) isAction()           {}
func (RemovePlayer) isAction()        {}
func (CreateTeam) isAction()          {}
func (EditTeam) isAction()            {}
func (RemoveTeam) isAction()          {}
func (SetWinner) isAction()           {}
func (Reorder) isAction()             {}
func (SwapPlayers) isAction()         {}
func (StartGame) isAction()           {}
func (InitializeOrReplace) isAction() {}
func (Reset) isAction()               {}

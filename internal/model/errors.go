package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound      = errors.New("player not found")
	ErrEmptyName           = errors.New("name must not be empty")
	ErrDuplicatePlayerName = errors.New("a player with this name already exists")

	// Team errors
	ErrTeamNotFound          = errors.New("team not found")
	ErrTeamTooLarge          = errors.New("team has too many players")
	ErrTeamHasNoPlayers      = errors.New("team must have at least one player")
	ErrPlayerAlreadyAssigned = errors.New("player is already on a team")
	ErrDuplicateTeamMember   = errors.New("player listed more than once")
	ErrNotEnoughUnassigned   = errors.New("no unassigned players available")

	// Queue errors
	ErrInvalidTeamOrder = errors.New("team order must list every team exactly once")
	ErrInvalidMove      = errors.New("team cannot move in that direction")
	ErrTeamNotQueued    = errors.New("team is not waiting in the queue")

	// Game errors
	ErrNoCompleteGame  = errors.New("no complete game in progress")
	ErrWinnerNotInGame = errors.New("winning team is not in the current game")
	ErrUnknownAction   = errors.New("unknown action")

	// Snapshot errors
	ErrMissingID   = errors.New("id must not be empty")
	ErrDuplicateID = errors.New("id is used more than once")
)

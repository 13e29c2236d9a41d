package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/courtqueue/internal/model"
	"github.com/mcoot/courtqueue/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodePlayerNotFound        = "PLAYER_NOT_FOUND"
	CodeTeamNotFound          = "TEAM_NOT_FOUND"
	CodeEmptyName             = "EMPTY_NAME"
	CodeDuplicatePlayerName   = "DUPLICATE_PLAYER_NAME"
	CodeTeamTooLarge          = "TEAM_TOO_LARGE"
	CodeTeamHasNoPlayers      = "TEAM_HAS_NO_PLAYERS"
	CodePlayerAlreadyAssigned = "PLAYER_ALREADY_ASSIGNED"
	CodeDuplicateTeamMember   = "DUPLICATE_TEAM_MEMBER"
	CodeNotEnoughUnassigned   = "NOT_ENOUGH_UNASSIGNED"
	CodeInvalidTeamOrder      = "INVALID_TEAM_ORDER"
	CodeInvalidMove           = "INVALID_MOVE"
	CodeTeamNotQueued         = "TEAM_NOT_QUEUED"
	CodeNoGameInProgress      = "NO_GAME_IN_PROGRESS"
	CodeWinnerNotInGame       = "WINNER_NOT_IN_GAME"
	CodeMissingID             = "MISSING_ID"
	CodeDuplicateID           = "DUPLICATE_ID"
	CodeInternalError         = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Lookups
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrTeamNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTeamNotFound, "Team not found"}}

	// Conflicts
	case errors.Is(err, model.ErrDuplicatePlayerName):
		return &httpError{http.StatusConflict, APIError{CodeDuplicatePlayerName, "A player with that name already exists"}}

	// Validation
	case errors.Is(err, model.ErrEmptyName):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyName, "Name must not be empty"}}
	case errors.Is(err, model.ErrTeamTooLarge):
		return &httpError{http.StatusBadRequest, APIError{CodeTeamTooLarge, "A team has at most 3 players"}}
	case errors.Is(err, model.ErrTeamHasNoPlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeTeamHasNoPlayers, "A new team needs at least one player"}}
	case errors.Is(err, model.ErrPlayerAlreadyAssigned):
		return &httpError{http.StatusBadRequest, APIError{CodePlayerAlreadyAssigned, err.Error()}}
	case errors.Is(err, model.ErrDuplicateTeamMember):
		return &httpError{http.StatusBadRequest, APIError{CodeDuplicateTeamMember, "A player appears more than once"}}
	case errors.Is(err, model.ErrNotEnoughUnassigned):
		return &httpError{http.StatusBadRequest, APIError{CodeNotEnoughUnassigned, "No unassigned players to form a team"}}
	case errors.Is(err, model.ErrInvalidTeamOrder):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTeamOrder, "Team order must list every team exactly once"}}
	case errors.Is(err, model.ErrInvalidMove):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMove, "Team cannot move further in that direction"}}
	case errors.Is(err, model.ErrTeamNotQueued):
		return &httpError{http.StatusBadRequest, APIError{CodeTeamNotQueued, "Team is not waiting in the queue"}}
	case errors.Is(err, model.ErrNoCompleteGame):
		return &httpError{http.StatusBadRequest, APIError{CodeNoGameInProgress, "No game in progress"}}
	case errors.Is(err, model.ErrWinnerNotInGame):
		return &httpError{http.StatusBadRequest, APIError{CodeWinnerNotInGame, "Winning team is not playing"}}
	case errors.Is(err, model.ErrMissingID):
		return &httpError{http.StatusBadRequest, APIError{CodeMissingID, err.Error()}}
	case errors.Is(err, model.ErrDuplicateID):
		return &httpError{http.StatusBadRequest, APIError{CodeDuplicateID, err.Error()}}
	case errors.Is(err, model.ErrUnknownAction):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Unknown action"}}

	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

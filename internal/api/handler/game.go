package handler

import (
	"net/http"

	"github.com/mcoot/courtqueue/internal/api/apierr"
	"github.com/mcoot/courtqueue/internal/api/request"
	"github.com/mcoot/courtqueue/internal/api/response"
	"github.com/mcoot/courtqueue/internal/model"
)

// GameHandler handles the current game
type GameHandler struct {
	controller Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller Controller) *GameHandler {
	return &GameHandler{controller: controller}
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.controller.State(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Court(w, http.StatusOK, state, response.GameFromModel(state))
}

// Start handles POST /api/v1/game/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	state, err := h.controller.StartGame(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Court(w, http.StatusOK, state, response.GameFromModel(state))
}

// Winner handles POST /api/v1/game/winner
func (h *GameHandler) Winner(w http.ResponseWriter, r *http.Request) {
	var req request.WinnerRequest
	if err := decode(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}
	if req.TeamID == "" {
		WriteError(w, apierr.NewInvalidRequestError("team_id is required"))
		return
	}

	state, err := h.controller.SetWinner(r.Context(), model.TeamID(req.TeamID))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Court(w, http.StatusOK, state, response.GameFromModel(state))
}

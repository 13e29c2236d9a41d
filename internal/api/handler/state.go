package handler

import (
	"net/http"

	"github.com/mcoot/courtqueue/internal/api/request"
	"github.com/mcoot/courtqueue/internal/api/response"
)

// StateHandler handles whole-court endpoints
type StateHandler struct {
	controller Controller
}

// NewStateHandler creates a new state handler
func NewStateHandler(controller Controller) *StateHandler {
	return &StateHandler{controller: controller}
}

// Get handles GET /api/v1/state
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.controller.State(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Court(w, http.StatusOK, state, response.StateFromModel(state))
}

// Replace handles PUT /api/v1/state
func (h *StateHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req request.ReplaceStateRequest
	if err := decode(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	state, err := h.controller.Replace(r.Context(), req.ToModel())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Court(w, http.StatusOK, state, response.StateFromModel(state))
}

// Reset handles POST /api/v1/reset. The password in the body is checked
// by the controller, so no session is needed.
func (h *StateHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req request.ResetRequest
	if err := decode(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.controller.Reset(r.Context(), req.Password); err != nil {
		WriteError(w, err)
		return
	}

	state, err := h.controller.State(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Court(w, http.StatusOK, state, response.StateFromModel(state))
}

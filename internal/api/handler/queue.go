package handler

import (
	"net/http"

	"github.com/mcoot/courtqueue/internal/api/request"
	"github.com/mcoot/courtqueue/internal/api/response"
	"github.com/mcoot/courtqueue/internal/services/queue"
)

// QueueHandler handles the waiting line
type QueueHandler struct {
	controller Controller
}

// NewQueueHandler creates a new queue handler
func NewQueueHandler(controller Controller) *QueueHandler {
	return &QueueHandler{controller: controller}
}

// Get handles GET /api/v1/queue, filtered by the optional q parameter
func (h *QueueHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.controller.State(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	q := r.URL.Query().Get("q")
	response.Court(w, http.StatusOK, state, response.Queue{
		Teams: response.TeamsFromModel(state, queue.SearchQueue(state, q)),
		Query: q,
	})
}

// Reorder handles PUT /api/v1/queue
func (h *QueueHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req request.ReorderRequest
	if err := decode(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	state, err := h.controller.Reorder(r.Context(), request.TeamIDs(req.TeamIDs))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Court(w, http.StatusOK, state, response.Queue{Teams: response.TeamsFromModel(state, queue.Queue(state))})
}

package handler

import (
	"net/http"

	"github.com/mcoot/courtqueue/internal/api/sse"
	"github.com/mcoot/courtqueue/internal/model"
	"github.com/mcoot/courtqueue/internal/services/queue"
)

// EventsHandler streams court events
type EventsHandler struct {
	controller Controller
	hub        *sse.Hub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(controller Controller, hub *sse.Hub) *EventsHandler {
	return &EventsHandler{controller: controller, hub: hub}
}

// Stream handles GET /api/v1/events. The first event is the current
// snapshot so a client never starts from nothing.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	state, err := h.controller.State(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	greeting, err := sse.EncodeEvent(model.Event{
		Type:      model.EventStateChanged,
		Version:   state.Version,
		Timestamp: state.UpdatedAt,
		Payload:   model.StateChangedPayload{Action: queue.InitializeOrReplace{}.Kind(), State: state},
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	sse.ServeSSE(w, r, h.hub, greeting)
}

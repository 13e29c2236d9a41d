package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/courtqueue/internal/api/response"
	"github.com/mcoot/courtqueue/internal/model"
)

// Broadcaster publishes court events to a hub as JSON
type Broadcaster struct {
	hub    *Hub
	logger *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:    hub,
		logger: logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Publish sends event to every client under its type name
func (b *Broadcaster) Publish(event model.Event) {
	data, err := EncodeEvent(event)
	if err != nil {
		b.logger.Error("sse failed to encode event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err))
		return
	}
	b.hub.Broadcast(data)
}

// EncodeEvent frames event as an SSE message with a JSON data line
func EncodeEvent(event model.Event) ([]byte, error) {
	data, err := json.Marshal(response.EventFromModel(event))
	if err != nil {
		return nil, err
	}
	return formatSSEMessage(string(event.Type), string(data)), nil
}

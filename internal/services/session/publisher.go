package session

import "github.com/mcoot/courtqueue/internal/model"

// NopPublisher discards events
type NopPublisher struct{}

// Publish does nothing
func (NopPublisher) Publish(model.Event) {}

// Publishers fans one event out to several publishers
type Publishers []Publisher

// Publish forwards the event to every publisher in order
func (ps Publishers) Publish(event model.Event) {
	for _, p := range ps {
		p.Publish(event)
	}
}

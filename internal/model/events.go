package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// EventStateChanged is emitted after any transition that was saved
	EventStateChanged EventType = "state_changed"
	// EventGameFinished is emitted when a winner is declared
	EventGameFinished EventType = "game_finished"
	// EventReset is emitted after the court has been wiped
	EventReset EventType = "reset"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Version   int64 // snapshot version the event refers to
	Timestamp time.Time
	Payload   any // Type-specific data
}

// StateChangedPayload contains data for state changed events
type StateChangedPayload struct {
	Action string // name of the action that produced the new snapshot
	State  *GameState
}

// GameFinishedPayload contains data for game finished events
type GameFinishedPayload struct {
	WinnerID TeamID
	LoserID  TeamID
	NextID   TeamID // empty when nobody was waiting
}

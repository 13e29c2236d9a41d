package model

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player is someone registered to play on the court
type Player struct {
	ID   PlayerID
	Name string // trimmed, non-empty
}

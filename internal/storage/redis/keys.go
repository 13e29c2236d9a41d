package redis

import (
	"fmt"

	"github.com/mcoot/courtqueue/internal/model"
)

// keys builds every Redis key under one prefix
type keys struct {
	prefix string
}

// player returns the key holding one player record
func (k keys) player(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", k.prefix, id)
}

// players returns the key of the LIST of player ids in registration order
func (k keys) players() string {
	return fmt.Sprintf("%s:players", k.prefix)
}

// team returns the key holding one team record
func (k keys) team(id model.TeamID) string {
	return fmt.Sprintf("%s:team:%s", k.prefix, id)
}

// teams returns the key of the LIST of team ids in queue order
func (k keys) teams() string {
	return fmt.Sprintf("%s:teams", k.prefix)
}

// currentGame returns the key of the single current-game record
func (k keys) currentGame() string {
	return fmt.Sprintf("%s:game:current", k.prefix)
}

// meta returns the key of the HASH of snapshot metadata
func (k keys) meta() string {
	return fmt.Sprintf("%s:meta", k.prefix)
}

// changes returns the pub/sub channel announcing saved snapshots
func (k keys) changes() string {
	return fmt.Sprintf("%s:changes", k.prefix)
}

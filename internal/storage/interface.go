package storage

import (
	"context"

	"github.com/mcoot/courtqueue/internal/model"
)

// Storage persists the court as one whole snapshot. Saves replace the
// previous snapshot entirely; the last writer wins.
type Storage interface {
	// LoadSnapshot returns the stored snapshot, or an empty one if nothing
	// has been saved yet
	LoadSnapshot(ctx context.Context) (*model.GameState, error)

	// SaveSnapshot replaces the stored snapshot
	SaveSnapshot(ctx context.Context, state *model.GameState) error

	// Reset removes every stored player, team and the current game
	Reset(ctx context.Context) error

	// Close releases any underlying connection
	Close() error
}

// Change announces that another writer saved a new snapshot
type Change struct {
	Version int64
	Origin  string // identifies the writer
}

// ChangeNotifier is implemented by stores shared between processes. The
// channel receives changes made by other writers only and is closed when
// ctx is done.
type ChangeNotifier interface {
	Subscribe(ctx context.Context) (<-chan Change, error)
}

package memory

import (
	"context"
	"sync"

	"github.com/mcoot/courtqueue/internal/model"
	"github.com/mcoot/courtqueue/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Snapshots are deep-copied on the way in and out.
type Storage struct {
	mu       sync.RWMutex
	snapshot *model.GameState
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadSnapshot(ctx context.Context) (*model.GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return model.NewGameState(), nil
	}
	return s.snapshot.Clone(), nil
}

func (s *Storage) SaveSnapshot(ctx context.Context, state *model.GameState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = state.Clone()
	return nil
}

func (s *Storage) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
	return nil
}

func (s *Storage) Close() error {
	return nil
}

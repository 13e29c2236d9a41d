package mocks

import (
	"fmt"
	"sync"

	"github.com/mcoot/courtqueue/internal/dependencies/ids"
)

// SequentialIDs is a predictable ids.Generator for testing.
// It yields "<prefix>-1", "<prefix>-2", ...
type SequentialIDs struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// Ensure SequentialIDs implements Generator
var _ ids.Generator = (*SequentialIDs)(nil)

// NewSequentialIDs creates a generator with the given prefix
func NewSequentialIDs(prefix string) *SequentialIDs {
	return &SequentialIDs{prefix: prefix}
}

// NewID returns the next id in the sequence
func (g *SequentialIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}

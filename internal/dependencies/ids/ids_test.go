package ids

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDIsValidUUID(t *testing.T) {
	id := New().NewID()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestNewIDIsUnique(t *testing.T) {
	gen := New()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

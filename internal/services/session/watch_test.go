package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/courtqueue/internal/dependencies/mocks"
	"github.com/mcoot/courtqueue/internal/model"
	"github.com/mcoot/courtqueue/internal/services/queue"
	"github.com/mcoot/courtqueue/internal/storage/redis"
	"github.com/mcoot/courtqueue/internal/testutil"
)

func newRedisController(t *testing.T, mini *miniredis.Miniredis, prefix string) (*Controller, *recordingPublisher) {
	t.Helper()

	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})
	store := redis.NewWithClient(client, redis.DefaultConfig())
	t.Cleanup(func() { _ = store.Close() })

	publisher := &recordingPublisher{}
	controller := NewController(
		store,
		queue.NewEngine(mocks.NewSequentialIDs(prefix+"-gen"), mocks.NewMockRandom()),
		newAuth(t),
		mocks.NewSequentialIDs(prefix),
		mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
		publisher,
		testutil.NopLogger(),
	)
	return controller, publisher
}

func TestWatchFollowsOtherInstances(t *testing.T) {
	mini := miniredis.RunT(t)
	writer, writerEvents := newRedisController(t, mini, "w")
	watcher, watcherEvents := newRedisController(t, mini, "r")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- watcher.Watch(ctx) }()

	// The subscription is live once miniredis reports a subscriber
	require.Eventually(t, func() bool {
		return len(mini.PubSubChannels("")) > 0
	}, time.Second, 10*time.Millisecond)

	_, err := writer.AddPlayer(ctx, "Alice")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(watcherEvents.Events()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	event := watcherEvents.Events()[0]
	assert.Equal(t, model.EventStateChanged, event.Type)
	assert.Equal(t, int64(1), event.Version)
	payload, ok := event.Payload.(model.StateChangedPayload)
	require.True(t, ok)
	assert.Len(t, payload.State.UnassignedPlayers, 1)

	// The writer publishes its own change once and ignores the echo
	assert.Len(t, writerEvents.Events(), 1)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

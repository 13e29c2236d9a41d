package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/courtqueue/internal/api/response"
	"github.com/mcoot/courtqueue/internal/model"
	"github.com/mcoot/courtqueue/internal/testutil"
)

func TestEncodeEventStateChanged(t *testing.T) {
	state := model.NewGameState()
	state.Players = []model.Player{{ID: "p1", Name: "Alice"}}
	state.UnassignedPlayers = []model.Player{{ID: "p1", Name: "Alice"}}
	state.Version = 4

	msg, err := EncodeEvent(model.Event{
		Type:      model.EventStateChanged,
		Version:   4,
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Payload:   model.StateChangedPayload{Action: "add_player", State: state},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(msg), "\n\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "event: state_changed", lines[0])

	var got response.Event
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(lines[1], "data: ")), &got))
	assert.Equal(t, "state_changed", got.Type)
	assert.Equal(t, "add_player", got.Action)
	require.NotNil(t, got.State)
	assert.Equal(t, int64(4), got.State.Version)
	require.Len(t, got.State.UnassignedPlayers, 1)
	assert.Equal(t, "Alice", got.State.UnassignedPlayers[0].Name)
}

func TestEncodeEventGameFinished(t *testing.T) {
	msg, err := EncodeEvent(model.Event{
		Type:    model.EventGameFinished,
		Version: 9,
		Payload: model.GameFinishedPayload{WinnerID: "b", LoserID: "a"},
	})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "event: game_finished\n"))
	assert.Contains(t, s, `"winner_id":"b"`)
	assert.Contains(t, s, `"loser_id":"a"`)
	assert.NotContains(t, s, "next_id")
}

func TestServeSSEDeliversPublishedEvents(t *testing.T) {
	hub := startHub(t)
	broadcaster := NewBroadcaster(hub, testutil.NopLogger())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeSSE(w, r, hub, nil)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: connected\n", line)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	broadcaster.Publish(model.Event{Type: model.EventReset, Version: 2})

	for {
		line, err = reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "event: reset") {
			break
		}
	}
	line, err = reader.ReadString('\n')
	require.NoError(t, err)
	assert.Contains(t, line, `"version":2`)
}

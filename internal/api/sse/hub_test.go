package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/courtqueue/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "state_changed",
			data:      `{"version":1}`,
			expected:  "event: state_changed\ndata: {\"version\":1}\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "reset",
			data:      "{\n  \"version\": 2\n}",
			expected:  "event: reset\ndata: {\ndata:   \"version\": 2\ndata: }\n\n",
		},
		{
			name:      "empty data",
			eventName: "ping",
			data:      "",
			expected:  "event: ping\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(formatSSEMessage(tt.eventName, tt.data)))
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single line", "hello", []string{"hello"}},
		{"two lines", "line1\nline2", []string{"line1", "line2"}},
		{"trailing newline", "line1\n", []string{"line1"}},
		{"empty string", "", []string{""}},
		{"crlf line endings", "line1\r\nline2\r\n", []string{"line1", "line2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitLines(tt.input))
		})
	}
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(testutil.NopLogger())
	go hub.Run()
	t.Cleanup(hub.Close)
	return hub
}

func receive(t *testing.T, client *Client) string {
	t.Helper()
	select {
	case msg := <-client.send:
		return string(msg)
	case <-time.After(time.Second):
		t.Fatal("client did not receive message")
		return ""
	}
}

func TestHubRegisterAndBroadcast(t *testing.T) {
	hub := startHub(t)

	client := NewClient("test")
	require.True(t, hub.Register(client))
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.BroadcastEvent("state_changed", "data")
	assert.Equal(t, "event: state_changed\ndata: data\n\n", receive(t, client))
}

func TestHubUnregister(t *testing.T) {
	hub := startHub(t)

	client := NewClient("test")
	require.True(t, hub.Register(client))
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Unregister(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)

	_, open := <-client.send
	assert.False(t, open, "send channel should be closed")
}

func TestHubBroadcastToMultipleClients(t *testing.T) {
	hub := startHub(t)

	clients := []*Client{NewClient("one"), NewClient("two"), NewClient("three")}
	for _, c := range clients {
		require.True(t, hub.Register(c))
	}
	require.Eventually(t, func() bool { return hub.ClientCount() == 3 }, time.Second, 5*time.Millisecond)

	hub.BroadcastEvent("update", "data")
	for _, c := range clients {
		assert.Equal(t, "event: update\ndata: data\n\n", receive(t, c))
	}
}

func TestHubCloseDisconnectsClients(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	go hub.Run()

	client := NewClient("test")
	require.True(t, hub.Register(client))
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Close()
	hub.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	assert.False(t, hub.Register(NewClient("late")))
}

package sse

import (
	"net/http"
	"time"
)

const (
	// Time between keepalive comments
	pingPeriod = 15 * time.Second

	// Buffer size for outgoing messages
	sendBufferSize = 64
)

// Client is one connected event stream
type Client struct {
	remoteAddr  string
	send        chan []byte
	connectedAt time.Time
}

// NewClient creates a new SSE client
func NewClient(remoteAddr string) *Client {
	return &Client{
		remoteAddr:  remoteAddr,
		send:        make(chan []byte, sendBufferSize),
		connectedAt: time.Now(),
	}
}

// ServeSSE streams hub events to the requester until the request ends or
// the hub closes. greeting, when non-nil, is written before any event.
func ServeSSE(w http.ResponseWriter, r *http.Request, hub *Hub, greeting []byte) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	// Streams outlive the server's write timeout
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	client := NewClient(r.RemoteAddr)
	if !hub.Register(client) {
		http.Error(w, "Event stream closed", http.StatusServiceUnavailable)
		return
	}
	defer hub.Unregister(client)

	w.WriteHeader(http.StatusOK)
	if greeting == nil {
		greeting = formatSSEMessage("connected", `{"status":"connected"}`)
	}
	if _, err := w.Write(greeting); err != nil {
		return
	}
	flusher.Flush()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-client.send:
			if !ok {
				return
			}
			if _, err := w.Write(message); err != nil {
				return
			}
			flusher.Flush()

		case <-ticker.C:
			if _, err := w.Write([]byte(": keepalive\n\n")); err != nil {
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/courtqueue/internal/api/response"
)

func newEventsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Stream court events",
		Long: `Connect to the court's SSE endpoint and stream events in real-time.

Events include:
  - state_changed: Something on the court changed
  - game_finished: A winner was called
  - reset: The court was wiped

Press Ctrl+C to disconnect.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return streamEvents(ctx, cmd.OutOrStdout(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output events as JSON lines")

	return cmd
}

// SSEEvent is a parsed SSE event
type SSEEvent struct {
	Event string
	Data  string
}

func streamEvents(ctx context.Context, w io.Writer, jsonOutput bool) error {
	url := strings.TrimSuffix(cfg.ServerURL, "/") + "/api/v1/events"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	// No timeout for SSE
	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if !jsonOutput {
		_, _ = fmt.Fprintln(w, "Connected")
	}

	err = readEvents(resp.Body, func(evt SSEEvent) {
		printEvent(w, evt, jsonOutput)
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("stream error: %w", err)
	}

	if !jsonOutput {
		_, _ = fmt.Fprintln(w, "Disconnected")
	}
	return nil
}

// readEvents parses an SSE stream, calling fn once per complete event
func readEvents(r io.Reader, fn func(SSEEvent)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	var current string
	var dataLines []string
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "event: "):
			current = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			dataLines = append(dataLines, strings.TrimPrefix(line, "data: "))
		case line == "":
			if current != "" {
				fn(SSEEvent{Event: current, Data: strings.Join(dataLines, "\n")})
			}
			current = ""
			dataLines = nil
		}
	}
	return scanner.Err()
}

func printEvent(w io.Writer, evt SSEEvent, jsonOutput bool) {
	if jsonOutput {
		_, _ = fmt.Fprintln(w, evt.Data)
		return
	}

	var data response.Event
	if err := json.Unmarshal([]byte(evt.Data), &data); err != nil {
		_, _ = fmt.Fprintf(w, "%s: %s\n", evt.Event, evt.Data)
		return
	}

	timestamp := data.Timestamp.Local().Format("2006-01-02 15:04:05")
	switch {
	case data.Action != "":
		_, _ = fmt.Fprintf(w, "[%s] %s v%d: %s\n", timestamp, evt.Event, data.Version, data.Action)
	case data.WinnerID != "":
		_, _ = fmt.Fprintf(w, "[%s] %s v%d: winner %s, loser %s\n", timestamp, evt.Event, data.Version, data.WinnerID, data.LoserID)
	default:
		_, _ = fmt.Fprintf(w, "[%s] %s v%d\n", timestamp, evt.Event, data.Version)
	}
}

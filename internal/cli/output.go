package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/courtqueue/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.State:
		o.printState(v)
	case response.Player:
		o.printf("Player: %s (%s)\n", v.Name, v.ID)
	case response.PlayerList:
		o.printPlayerList(v)
	case response.Team:
		o.printTeam(v)
	case response.TeamList:
		o.printTeamList(v)
	case response.Queue:
		o.printQueue(v)
	case response.Game:
		o.printGame(v)
	case response.AuthResponse:
		o.printf("Logged in. Session expires %s\n", v.ExpiresAt.Local().Format("2006-01-02 15:04"))
	case HealthResult:
		o.printf("Server status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printState(s response.State) {
	o.printf("Court (version %d)\n", s.Version)
	o.printf("\n")
	o.printGame(s.CurrentGame)
	o.printf("\nTeams:\n")
	if len(s.Teams) == 0 {
		o.printf("  (none)\n")
	}
	for _, t := range s.Teams {
		o.printf("  %s\n", teamLine(t))
	}
	o.printf("\nUnassigned: %s\n", playerNames(s.UnassignedPlayers))
}

func (o *Output) printPlayerList(l response.PlayerList) {
	if len(l.Players) == 0 {
		o.printf("No players\n")
		return
	}
	o.printf("Players:\n")
	for _, p := range l.Players {
		status := "unassigned"
		switch {
		case p.IsPlaying:
			status = "playing"
		case p.TeamID != "":
			status = "waiting"
		}
		o.printf("  %-20s %-12s %s\n", p.Name, status, p.ID)
	}
	o.printf("Unassigned: %d\n", len(l.Unassigned))
}

func (o *Output) printTeam(t response.Team) {
	o.printf("Team: %s (%s)\n", t.Name, t.ID)
	o.printf("  Players: %s\n", playerNames(t.Players))
	switch {
	case t.IsPlaying:
		o.printf("  Status: on court\n")
	case t.QueuePosition > 0:
		o.printf("  Status: waiting, position %d\n", t.QueuePosition)
	default:
		o.printf("  Status: not eligible\n")
	}
}

func (o *Output) printTeamList(l response.TeamList) {
	if len(l.Teams) == 0 {
		o.printf("No teams\n")
		return
	}
	for _, t := range l.Teams {
		o.printf("%s\n", teamLine(t))
	}
}

func (o *Output) printQueue(q response.Queue) {
	if len(q.Teams) == 0 {
		if q.Query != "" {
			o.printf("No waiting teams match %q\n", q.Query)
		} else {
			o.printf("Queue is empty\n")
		}
		return
	}
	for _, t := range q.Teams {
		o.printf("%d. %s [%s]\n", t.QueuePosition, t.Name, playerNames(t.Players))
	}
}

func (o *Output) printGame(g response.Game) {
	if !g.InProgress {
		o.printf("No game in progress\n")
	} else {
		o.printf("On court: %s vs %s\n", g.TeamA.Name, g.TeamB.Name)
		o.printf("Game length: %d minutes\n", g.GameLengthMinutes)
	}
	if g.NextTeam != nil {
		o.printf("Next up: %s\n", g.NextTeam.Name)
	}
	o.printf("Waiting teams: %d\n", g.WaitingTeamCount)
}

func teamLine(t response.Team) string {
	status := ""
	switch {
	case t.IsPlaying:
		status = " (on court)"
	case t.QueuePosition > 0:
		status = fmt.Sprintf(" (#%d in queue)", t.QueuePosition)
	}
	return fmt.Sprintf("%s%s [%s] %s", t.Name, status, playerNames(t.Players), t.ID)
}

func playerNames(players []response.Player) string {
	if len(players) == 0 {
		return "-"
	}
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

package redis

import (
	"time"

	"github.com/mcoot/courtqueue/internal/model"
)

// Stored forms. Teams reference players by id so a player's name lives in
// exactly one record.

type playerRecord struct {
	ID   model.PlayerID `json:"id"`
	Name string         `json:"name"`
}

type teamRecord struct {
	ID        model.TeamID     `json:"id"`
	Name      string           `json:"name"`
	PlayerIDs []model.PlayerID `json:"player_ids"`
}

type gameRecord struct {
	TeamA model.TeamID `json:"team_a,omitempty"`
	TeamB model.TeamID `json:"team_b,omitempty"`
}

type changeMessage struct {
	Version int64  `json:"version"`
	Origin  string `json:"origin"`
}

const (
	metaVersion   = "version"
	metaUpdatedAt = "updated_at"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

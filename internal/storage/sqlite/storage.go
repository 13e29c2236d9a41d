// Package sqlite provides a SQLite-backed court store with one row per
// player, team and membership.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mcoot/courtqueue/internal/model"
	"github.com/mcoot/courtqueue/internal/storage"
	"github.com/mcoot/courtqueue/internal/storage/sqlite/migrations"
)

// currentGameID is the fixed key of the single current-game row
const currentGameID = "current"

// Storage persists the court in SQLite
type Storage struct {
	db *sql.DB
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Open opens (creating if needed) the database at path and applies the
// embedded migrations
func Open(path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One writer at a time; SQLite serializes writes anyway
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the SQLite handle
func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}

// Snapshot operations

func (s *Storage) LoadSnapshot(ctx context.Context) (*model.GameState, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin load: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	state := model.NewGameState()

	players, err := loadPlayers(ctx, tx)
	if err != nil {
		return nil, err
	}
	state.Players = players

	teams, err := loadTeams(ctx, tx, players)
	if err != nil {
		return nil, err
	}
	state.Teams = teams

	var teamA, teamB sql.NullString
	err = tx.QueryRowContext(ctx,
		`SELECT team_a, team_b FROM current_game WHERE id = ?`, currentGameID,
	).Scan(&teamA, &teamB)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load current game: %w", err)
	}
	state.CurrentGame = model.CurrentGame{
		TeamA: model.TeamID(teamA.String),
		TeamB: model.TeamID(teamB.String),
	}

	var updatedAt int64
	err = tx.QueryRowContext(ctx,
		`SELECT version, updated_at FROM snapshot_meta WHERE id = 1`,
	).Scan(&state.Version, &updatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("load snapshot meta: %w", err)
	default:
		state.UpdatedAt = fromMillis(updatedAt)
	}

	state.UnassignedPlayers = state.Unassigned()
	return state, nil
}

func loadPlayers(ctx context.Context, tx *sql.Tx) ([]model.Player, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, name FROM players ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	defer func() { _ = rows.Close() }()

	players := []model.Player{}
	for rows.Next() {
		var p model.Player
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func loadTeams(ctx context.Context, tx *sql.Tx, players []model.Player) ([]model.Team, error) {
	byID := make(map[model.PlayerID]model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	rows, err := tx.QueryContext(ctx, `SELECT id, name FROM teams ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	teams := []model.Team{}
	index := make(map[model.TeamID]int)
	for rows.Next() {
		t := model.Team{Players: []model.Player{}}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan team: %w", err)
		}
		index[t.ID] = len(teams)
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	_ = rows.Close()

	rows, err = tx.QueryContext(ctx, `SELECT team_id, player_id FROM team_players ORDER BY team_id, position`)
	if err != nil {
		return nil, fmt.Errorf("load team members: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var teamID model.TeamID
		var playerID model.PlayerID
		if err := rows.Scan(&teamID, &playerID); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		i, ok := index[teamID]
		p, known := byID[playerID]
		if !ok || !known {
			continue
		}
		teams[i].Players = append(teams[i].Players, p)
	}
	return teams, rows.Err()
}

func (s *Storage) SaveSnapshot(ctx context.Context, state *model.GameState) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := clearTables(ctx, tx); err != nil {
		return err
	}

	for i, p := range state.Players {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO players (id, name, position) VALUES (?, ?, ?)`,
			string(p.ID), p.Name, i,
		); err != nil {
			return fmt.Errorf("insert player %s: %w", p.ID, err)
		}
	}
	for i, t := range state.Teams {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO teams (id, name, position) VALUES (?, ?, ?)`,
			string(t.ID), t.Name, i,
		); err != nil {
			return fmt.Errorf("insert team %s: %w", t.ID, err)
		}
		for j, p := range t.Players {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO team_players (team_id, player_id, position) VALUES (?, ?, ?)`,
				string(t.ID), string(p.ID), j,
			); err != nil {
				return fmt.Errorf("insert member %s of team %s: %w", p.ID, t.ID, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO current_game (id, team_a, team_b) VALUES (?, ?, ?)`,
		currentGameID, nullable(string(state.CurrentGame.TeamA)), nullable(string(state.CurrentGame.TeamB)),
	); err != nil {
		return fmt.Errorf("save current game: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshot_meta (id, version, updated_at) VALUES (1, ?, ?)`,
		state.Version, toMillis(state.UpdatedAt),
	); err != nil {
		return fmt.Errorf("save snapshot meta: %w", err)
	}

	return tx.Commit()
}

func (s *Storage) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := clearTables(ctx, tx); err != nil {
		return err
	}
	return tx.Commit()
}

// clearTables deletes every row of the court tables
func clearTables(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{"team_players", "teams", "players", "current_game", "snapshot_meta"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func nullable(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

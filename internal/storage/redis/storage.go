package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mcoot/courtqueue/internal/model"
	"github.com/mcoot/courtqueue/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Each player and team lives under its own key; ordered id lists keep
// registration and queue order. Saves run in a single MULTI/EXEC and are
// announced on a pub/sub channel so other processes can reload.
type Storage struct {
	client *redis.Client
	cfg    Config
	keys   keys
	origin string
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultConfig().KeyPrefix
	}
	return &Storage{
		client: client,
		cfg:    cfg,
		keys:   keys{prefix: cfg.KeyPrefix},
		origin: uuid.NewString(),
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Origin identifies this instance in change notifications
func (s *Storage) Origin() string {
	return s.origin
}

// Ensure Storage implements the interfaces
var (
	_ storage.Storage        = (*Storage)(nil)
	_ storage.ChangeNotifier = (*Storage)(nil)
)

// Snapshot operations

func (s *Storage) LoadSnapshot(ctx context.Context) (*model.GameState, error) {
	var (
		playerIDs *redis.StringSliceCmd
		teamIDs   *redis.StringSliceCmd
		game      *redis.StringCmd
		meta      *redis.MapStringStringCmd
	)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		playerIDs = pipe.LRange(ctx, s.keys.players(), 0, -1)
		teamIDs = pipe.LRange(ctx, s.keys.teams(), 0, -1)
		game = pipe.Get(ctx, s.keys.currentGame())
		meta = pipe.HGetAll(ctx, s.keys.meta())
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	state := model.NewGameState()

	players, err := s.loadPlayers(ctx, playerIDs.Val())
	if err != nil {
		return nil, err
	}
	state.Players = players

	teams, err := s.loadTeams(ctx, teamIDs.Val(), players)
	if err != nil {
		return nil, err
	}
	state.Teams = teams

	if data, err := game.Bytes(); err == nil {
		var rec gameRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decode current game: %w", err)
		}
		state.CurrentGame = model.CurrentGame{TeamA: rec.TeamA, TeamB: rec.TeamB}
	} else if !errors.Is(err, redis.Nil) {
		return nil, err
	}

	if v, ok := meta.Val()[metaVersion]; ok {
		state.Version, _ = strconv.ParseInt(v, 10, 64)
	}
	if v, ok := meta.Val()[metaUpdatedAt]; ok {
		state.UpdatedAt = parseTime(v)
	}

	state.UnassignedPlayers = state.Unassigned()
	return state, nil
}

func (s *Storage) loadPlayers(ctx context.Context, ids []string) ([]model.Player, error) {
	players := make([]model.Player, 0, len(ids))
	if len(ids) == 0 {
		return players, nil
	}

	redisKeys := make([]string, len(ids))
	for i, id := range ids {
		redisKeys[i] = s.keys.player(model.PlayerID(id))
	}
	values, err := s.client.MGet(ctx, redisKeys...).Result()
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			// Listed but missing: skip rather than fail the whole load
			continue
		}
		var rec playerRecord
		if err := json.Unmarshal([]byte(str), &rec); err != nil {
			return nil, fmt.Errorf("decode player %s: %w", ids[i], err)
		}
		players = append(players, model.Player{ID: rec.ID, Name: rec.Name})
	}
	return players, nil
}

func (s *Storage) loadTeams(ctx context.Context, ids []string, players []model.Player) ([]model.Team, error) {
	teams := make([]model.Team, 0, len(ids))
	if len(ids) == 0 {
		return teams, nil
	}

	byID := make(map[model.PlayerID]model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	redisKeys := make([]string, len(ids))
	for i, id := range ids {
		redisKeys[i] = s.keys.team(model.TeamID(id))
	}
	values, err := s.client.MGet(ctx, redisKeys...).Result()
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		var rec teamRecord
		if err := json.Unmarshal([]byte(str), &rec); err != nil {
			return nil, fmt.Errorf("decode team %s: %w", ids[i], err)
		}
		members := make([]model.Player, 0, len(rec.PlayerIDs))
		for _, id := range rec.PlayerIDs {
			if p, ok := byID[id]; ok {
				members = append(members, p)
			}
		}
		teams = append(teams, model.Team{ID: rec.ID, Name: rec.Name, Players: members})
	}
	return teams, nil
}

func (s *Storage) SaveSnapshot(ctx context.Context, state *model.GameState) error {
	stale, err := s.entityKeys(ctx)
	if err != nil {
		return err
	}

	values := make(map[string][]byte, len(state.Players)+len(state.Teams))
	playerIDs := make([]any, len(state.Players))
	for i, p := range state.Players {
		data, err := json.Marshal(playerRecord{ID: p.ID, Name: p.Name})
		if err != nil {
			return err
		}
		key := s.keys.player(p.ID)
		values[key] = data
		playerIDs[i] = string(p.ID)
	}
	teamIDs := make([]any, len(state.Teams))
	for i, t := range state.Teams {
		data, err := json.Marshal(teamRecord{ID: t.ID, Name: t.Name, PlayerIDs: t.PlayerIDs()})
		if err != nil {
			return err
		}
		key := s.keys.team(t.ID)
		values[key] = data
		teamIDs[i] = string(t.ID)
	}
	game, err := json.Marshal(gameRecord{TeamA: state.CurrentGame.TeamA, TeamB: state.CurrentGame.TeamB})
	if err != nil {
		return err
	}
	change, err := json.Marshal(changeMessage{Version: state.Version, Origin: s.origin})
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range stale {
			if _, keep := values[key]; !keep {
				pipe.Del(ctx, key)
			}
		}
		pipe.Del(ctx, s.keys.players(), s.keys.teams())
		for key, data := range values {
			pipe.Set(ctx, key, data, 0)
		}
		if len(playerIDs) > 0 {
			pipe.RPush(ctx, s.keys.players(), playerIDs...)
		}
		if len(teamIDs) > 0 {
			pipe.RPush(ctx, s.keys.teams(), teamIDs...)
		}
		pipe.Set(ctx, s.keys.currentGame(), game, 0)
		pipe.HSet(ctx, s.keys.meta(),
			metaVersion, state.Version,
			metaUpdatedAt, formatTime(state.UpdatedAt),
		)
		pipe.Publish(ctx, s.keys.changes(), change)
		return nil
	})
	return err
}

func (s *Storage) Reset(ctx context.Context) error {
	stale, err := s.entityKeys(ctx)
	if err != nil {
		return err
	}
	change, err := json.Marshal(changeMessage{Origin: s.origin})
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, append(stale, s.keys.players(), s.keys.teams(), s.keys.currentGame(), s.keys.meta())...)
		pipe.Publish(ctx, s.keys.changes(), change)
		return nil
	})
	return err
}

// entityKeys returns the keys of every currently listed player and team
func (s *Storage) entityKeys(ctx context.Context) ([]string, error) {
	playerIDs, err := s.client.LRange(ctx, s.keys.players(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	teamIDs, err := s.client.LRange(ctx, s.keys.teams(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(playerIDs)+len(teamIDs))
	for _, id := range playerIDs {
		out = append(out, s.keys.player(model.PlayerID(id)))
	}
	for _, id := range teamIDs {
		out = append(out, s.keys.team(model.TeamID(id)))
	}
	return out, nil
}

// Change notifications

// Subscribe delivers snapshots saved by other Storage instances on the
// same Redis and key prefix
func (s *Storage) Subscribe(ctx context.Context) (<-chan storage.Change, error) {
	sub := s.client.Subscribe(ctx, s.keys.changes())
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	out := make(chan storage.Change, 16)
	go func() {
		defer close(out)
		defer func() { _ = sub.Close() }()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var change changeMessage
				if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
					continue
				}
				if change.Origin == s.origin {
					continue
				}
				select {
				case out <- storage.Change{Version: change.Version, Origin: change.Origin}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

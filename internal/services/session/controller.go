package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/courtqueue/internal/dependencies/clock"
	"github.com/mcoot/courtqueue/internal/dependencies/ids"
	"github.com/mcoot/courtqueue/internal/model"
	"github.com/mcoot/courtqueue/internal/services/queue"
	"github.com/mcoot/courtqueue/internal/storage"
)

// Publisher receives every event the controller emits
type Publisher interface {
	Publish(event model.Event)
}

// PasswordChecker verifies the out-of-band credential that gates Reset
type PasswordChecker interface {
	CheckPassword(password string) error
}

// Controller is the dispatcher around the queue engine. Every mutation
// loads the stored snapshot, validates the action, applies it, saves the
// result and publishes it. Mutations and reloads are serialized so a save
// never interleaves with a reload of an older snapshot.
type Controller struct {
	storage   storage.Storage
	engine    *queue.Engine
	passwords PasswordChecker
	ids       ids.Generator
	clock     clock.Clock
	publisher Publisher
	logger    *slog.Logger

	mu          sync.Mutex
	lastVersion int64 // version of the last snapshot published, guarded by mu
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	engine *queue.Engine,
	passwords PasswordChecker,
	ids ids.Generator,
	clock clock.Clock,
	publisher Publisher,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		engine:    engine,
		passwords: passwords,
		ids:       ids,
		clock:     clock,
		publisher: publisher,
		logger:    logger,
	}
}

// State returns the current snapshot with derived fields recomputed
func (c *Controller) State(ctx context.Context) (*model.GameState, error) {
	current, err := c.storage.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return c.engine.Apply(nil, queue.InitializeOrReplace{State: current}), nil
}

// AddPlayer registers a player
func (c *Controller) AddPlayer(ctx context.Context, name string) (*model.Player, error) {
	id := model.PlayerID(c.ids.NewID())
	next, err := c.apply(ctx, queue.AddPlayer{ID: id, Name: name})
	if err != nil {
		return nil, err
	}
	p := *next.GetPlayer(id)
	return &p, nil
}

// RemovePlayer deletes a player from the court and from their team
func (c *Controller) RemovePlayer(ctx context.Context, id model.PlayerID) error {
	_, err := c.apply(ctx, queue.RemovePlayer{PlayerID: id})
	return err
}

// CreateTeam groups unassigned players into a new team. An empty name is
// generated from the members. It returns the new state and the team as it
// stands in it.
func (c *Controller) CreateTeam(ctx context.Context, playerIDs []model.PlayerID, name string) (*model.GameState, *model.Team, error) {
	id := model.TeamID(c.ids.NewID())
	next, err := c.apply(ctx, queue.CreateTeam{ID: id, PlayerIDs: playerIDs, Name: name})
	if err != nil {
		return nil, nil, err
	}
	return next, cloneTeam(next.GetTeam(id)), nil
}

// CreateRandomTeam builds a team from the first unassigned players with a
// generated name
func (c *Controller) CreateRandomTeam(ctx context.Context) (*model.GameState, *model.Team, error) {
	id := model.TeamID(c.ids.NewID())
	next, _, err := c.dispatch(ctx, func(current *model.GameState) (queue.Action, error) {
		playerIDs := queue.RandomTeamPlayers(current)
		if len(playerIDs) == 0 {
			return nil, model.ErrNotEnoughUnassigned
		}
		return queue.CreateTeam{ID: id, PlayerIDs: playerIDs}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return next, cloneTeam(next.GetTeam(id)), nil
}

// EditTeam replaces a team's members; a non-empty name also renames it
func (c *Controller) EditTeam(ctx context.Context, id model.TeamID, playerIDs []model.PlayerID, name string) (*model.GameState, *model.Team, error) {
	next, err := c.apply(ctx, queue.EditTeam{TeamID: id, PlayerIDs: playerIDs, Name: name})
	if err != nil {
		return nil, nil, err
	}
	return next, cloneTeam(next.GetTeam(id)), nil
}

// RemoveTeam deletes a team, refilling its slot if it was playing
func (c *Controller) RemoveTeam(ctx context.Context, id model.TeamID) error {
	_, err := c.apply(ctx, queue.RemoveTeam{TeamID: id})
	return err
}

// SetWinner finishes the current game and rotates the queue
func (c *Controller) SetWinner(ctx context.Context, id model.TeamID) (*model.GameState, error) {
	var loser model.TeamID
	next, _, err := c.dispatch(ctx, func(current *model.GameState) (queue.Action, error) {
		loser = current.CurrentGame.TeamA
		if loser == id {
			loser = current.CurrentGame.TeamB
		}
		return queue.SetWinner{TeamID: id}, nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("game finished",
		slog.String("winner_id", string(id)),
		slog.String("loser_id", string(loser)),
		slog.String("next_id", string(next.CurrentGame.TeamB)),
	)
	c.publisher.Publish(model.Event{
		Type:      model.EventGameFinished,
		Version:   next.Version,
		Timestamp: next.UpdatedAt,
		Payload: model.GameFinishedPayload{
			WinnerID: id,
			LoserID:  loser,
			NextID:   next.CurrentGame.TeamB,
		},
	})
	return next, nil
}

// StartGame fills empty current-game slots from the queue
func (c *Controller) StartGame(ctx context.Context) (*model.GameState, error) {
	return c.apply(ctx, queue.StartGame{})
}

// Reorder replaces the queue order with the given team ids
func (c *Controller) Reorder(ctx context.Context, teamIDs []model.TeamID) (*model.GameState, error) {
	return c.apply(ctx, queue.Reorder{TeamIDs: teamIDs})
}

// MoveTeam swaps a waiting team with its neighbour in the queue
func (c *Controller) MoveTeam(ctx context.Context, id model.TeamID, dir queue.Direction) (*model.GameState, error) {
	next, _, err := c.dispatch(ctx, func(current *model.GameState) (queue.Action, error) {
		order, err := queue.MoveTeam(current, id, dir)
		if err != nil {
			return nil, err
		}
		return queue.Reorder{TeamIDs: order}, nil
	})
	return next, err
}

// SwapPlayers exchanges the team positions of two players
func (c *Controller) SwapPlayers(ctx context.Context, first, second model.PlayerID) (*model.GameState, error) {
	return c.apply(ctx, queue.SwapPlayers{First: first, Second: second})
}

// Replace stores state wholesale, e.g. an imported snapshot
func (c *Controller) Replace(ctx context.Context, state *model.GameState) (*model.GameState, error) {
	return c.apply(ctx, queue.InitializeOrReplace{State: state})
}

// Reset wipes the court after checking the admin password
func (c *Controller) Reset(ctx context.Context, password string) error {
	if err := c.passwords.CheckPassword(password); err != nil {
		c.logger.Warn("reset rejected")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.storage.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	// Saving the empty court replaces everything in one write, so a failure
	// leaves the previous court in place
	next := c.engine.Apply(current, queue.Reset{})
	next.Version = current.Version + 1
	next.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSnapshot(ctx, next); err != nil {
		c.logger.Error("failed to save snapshot", slog.String("error", err.Error()))
		return fmt.Errorf("save snapshot: %w", err)
	}
	c.lastVersion = next.Version

	c.logger.Info("court reset", slog.Int64("version", next.Version))
	c.publisher.Publish(model.Event{
		Type:      model.EventReset,
		Version:   next.Version,
		Timestamp: next.UpdatedAt,
		Payload:   model.StateChangedPayload{Action: queue.Reset{}.Kind(), State: next},
	})
	return nil
}

// Sync reloads the stored snapshot and publishes it if another writer
// changed it since the last publish
func (c *Controller) Sync(ctx context.Context) (*model.GameState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	loaded, err := c.storage.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	next := c.engine.Apply(nil, queue.InitializeOrReplace{State: loaded})
	if next.Version == c.lastVersion {
		return next, nil
	}

	c.lastVersion = next.Version
	c.logger.Info("snapshot changed externally", slog.Int64("version", next.Version))
	c.publisher.Publish(model.Event{
		Type:      model.EventStateChanged,
		Version:   next.Version,
		Timestamp: c.clock.Now(),
		Payload:   model.StateChangedPayload{Action: queue.InitializeOrReplace{}.Kind(), State: next},
	})
	return next, nil
}

// Watch follows change notifications from a shared store, calling Sync on
// each, until ctx is done. Stores without notifications return at once.
func (c *Controller) Watch(ctx context.Context) error {
	notifier, ok := c.storage.(storage.ChangeNotifier)
	if !ok {
		c.logger.Debug("storage has no change notifications")
		return nil
	}

	changes, err := notifier.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribe to changes: %w", err)
	}

	for change := range changes {
		if _, err := c.Sync(ctx); err != nil {
			c.logger.Warn("failed to sync after external change",
				slog.Int64("version", change.Version),
				slog.String("origin", change.Origin),
				slog.String("error", err.Error()),
			)
		}
	}
	return ctx.Err()
}

// apply dispatches a fixed action
func (c *Controller) apply(ctx context.Context, action queue.Action) (*model.GameState, error) {
	next, _, err := c.dispatch(ctx, func(*model.GameState) (queue.Action, error) {
		return action, nil
	})
	return next, err
}

// dispatch runs one load, validate, apply, save, publish cycle. build
// chooses the action from the loaded snapshot.
func (c *Controller) dispatch(ctx context.Context, build func(*model.GameState) (queue.Action, error)) (*model.GameState, queue.Action, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.storage.LoadSnapshot(ctx)
	if err != nil {
		c.logger.Error("failed to load snapshot", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("load snapshot: %w", err)
	}

	action, err := build(current)
	if err != nil {
		return nil, nil, err
	}
	if err := queue.Validate(current, action); err != nil {
		c.logger.Debug("action rejected",
			slog.String("action", action.Kind()),
			slog.String("reason", err.Error()),
		)
		return nil, nil, err
	}

	next := c.engine.Apply(current, action)
	next.Version = current.Version + 1
	next.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSnapshot(ctx, next); err != nil {
		c.logger.Error("failed to save snapshot",
			slog.String("action", action.Kind()),
			slog.String("error", err.Error()),
		)
		return nil, nil, fmt.Errorf("save snapshot: %w", err)
	}
	c.lastVersion = next.Version

	c.logger.Info("action applied",
		slog.String("action", action.Kind()),
		slog.Int64("version", next.Version),
		slog.Int("player_count", len(next.Players)),
		slog.Int("team_count", len(next.Teams)),
	)
	c.publisher.Publish(model.Event{
		Type:      model.EventStateChanged,
		Version:   next.Version,
		Timestamp: next.UpdatedAt,
		Payload:   model.StateChangedPayload{Action: action.Kind(), State: next},
	})
	return next, action, nil
}

func cloneTeam(t *model.Team) *model.Team {
	out := t.Clone()
	return &out
}

// ControllerInterface defines the operations the API layer depends on
type ControllerInterface interface {
	State(ctx context.Context) (*model.GameState, error)
	AddPlayer(ctx context.Context, name string) (*model.Player, error)
	RemovePlayer(ctx context.Context, id model.PlayerID) error
	CreateTeam(ctx context.Context, playerIDs []model.PlayerID, name string) (*model.GameState, *model.Team, error)
	CreateRandomTeam(ctx context.Context) (*model.GameState, *model.Team, error)
	EditTeam(ctx context.Context, id model.TeamID, playerIDs []model.PlayerID, name string) (*model.GameState, *model.Team, error)
	RemoveTeam(ctx context.Context, id model.TeamID) error
	SetWinner(ctx context.Context, id model.TeamID) (*model.GameState, error)
	StartGame(ctx context.Context) (*model.GameState, error)
	Reorder(ctx context.Context, teamIDs []model.TeamID) (*model.GameState, error)
	MoveTeam(ctx context.Context, id model.TeamID, dir queue.Direction) (*model.GameState, error)
	SwapPlayers(ctx context.Context, first, second model.PlayerID) (*model.GameState, error)
	Replace(ctx context.Context, state *model.GameState) (*model.GameState, error)
	Reset(ctx context.Context, password string) error
	Sync(ctx context.Context) (*model.GameState, error)
	Watch(ctx context.Context) error
}

var _ ControllerInterface = (*Controller)(nil)

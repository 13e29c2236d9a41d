package queue

import (
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/courtqueue/internal/dependencies/ids"
	"github.com/mcoot/courtqueue/internal/dependencies/random"
	"github.com/mcoot/courtqueue/internal/model"
)

// Engine applies actions to game states. Its only non-determinism is the
// id generator and the random source used for team names, both injected.
type Engine struct {
	ids    ids.Generator
	random random.Random
}

// NewEngine creates a new Engine
func NewEngine(gen ids.Generator, rnd random.Random) *Engine {
	return &Engine{
		ids:    gen,
		random: rnd,
	}
}

// Apply returns the state that results from applying action to state.
// The input is never modified. Invalid actions (see Validate) leave the
// state unchanged. The result always has its derived fields recomputed.
func (e *Engine) Apply(state *model.GameState, action Action) *model.GameState {
	if state == nil {
		state = model.NewGameState()
	}
	if err := Validate(state, action); err != nil {
		return normalize(state.Clone())
	}

	switch a := action.(type) {
	case AddPlayer:
		return normalize(e.addPlayer(state, a))
	case RemovePlayer:
		return normalize(removePlayer(state, a))
	case CreateTeam:
		return e.createTeam(state, a)
	case EditTeam:
		return normalize(editTeam(state, a))
	case RemoveTeam:
		return removeTeam(state, a)
	case SetWinner:
		return HandleGameWinner(state, a.TeamID)
	case Reorder:
		return normalize(reorder(state, a))
	case SwapPlayers:
		return normalize(swapPlayers(state, a))
	case StartGame:
		return InitializeGame(state)
	case InitializeOrReplace:
		if a.State == nil {
			return model.NewGameState()
		}
		return normalize(a.State.Clone())
	case Reset:
		out := model.NewGameState()
		out.Version = state.Version
		out.UpdatedAt = state.UpdatedAt
		return out
	}
	return normalize(state.Clone())
}

func (e *Engine) addPlayer(s *model.GameState, a AddPlayer) *model.GameState {
	out := s.Clone()
	id := a.ID
	if id == "" {
		id = model.PlayerID(e.ids.NewID())
	}
	out.Players = append(out.Players, model.Player{ID: id, Name: strings.TrimSpace(a.Name)})
	return out
}

func removePlayer(s *model.GameState, a RemovePlayer) *model.GameState {
	out := s.Clone()
	out.Players = lo.Filter(out.Players, func(p model.Player, _ int) bool {
		return p.ID != a.PlayerID
	})
	for i := range out.Teams {
		t := &out.Teams[i]
		if !t.HasPlayer(a.PlayerID) {
			continue
		}
		t.Players = lo.Filter(t.Players, func(p model.Player, _ int) bool {
			return p.ID != a.PlayerID
		})
		if out.CurrentGame.TeamA == t.ID {
			out.CurrentGame.TeamA = ""
		}
		if out.CurrentGame.TeamB == t.ID {
			out.CurrentGame.TeamB = ""
		}
	}
	return out
}

func (e *Engine) createTeam(s *model.GameState, a CreateTeam) *model.GameState {
	out := s.Clone()
	players := resolvePlayers(out, a.PlayerIDs)

	name := strings.TrimSpace(a.Name)
	if name == "" {
		name = GenerateTeamName(e.random, players)
	}
	id := a.ID
	if id == "" {
		id = model.TeamID(e.ids.NewID())
	}
	out.Teams = append(out.Teams, model.Team{ID: id, Name: name, Players: players})

	if out.CurrentGame.TeamA == "" || out.CurrentGame.TeamB == "" {
		return InitializeGame(out)
	}
	return normalize(out)
}

func editTeam(s *model.GameState, a EditTeam) *model.GameState {
	out := s.Clone()
	t := out.GetTeam(a.TeamID)
	t.Players = resolvePlayers(out, a.PlayerIDs)
	if name := strings.TrimSpace(a.Name); name != "" {
		t.Name = name
	}
	return out
}

func removeTeam(s *model.GameState, a RemoveTeam) *model.GameState {
	out := s.Clone()
	out.Teams = lo.Filter(out.Teams, func(t model.Team, _ int) bool {
		return t.ID != a.TeamID
	})

	cleared := false
	if out.CurrentGame.TeamA == a.TeamID {
		out.CurrentGame.TeamA = ""
		cleared = true
	}
	if out.CurrentGame.TeamB == a.TeamID {
		out.CurrentGame.TeamB = ""
		cleared = true
	}
	if cleared {
		return InitializeGame(out)
	}
	return normalize(out)
}

func reorder(s *model.GameState, a Reorder) *model.GameState {
	out := s.Clone()
	byID := lo.KeyBy(out.Teams, func(t model.Team) model.TeamID { return t.ID })
	out.Teams = lo.Map(a.TeamIDs, func(id model.TeamID, _ int) model.Team { return byID[id] })
	return out
}

func swapPlayers(s *model.GameState, a SwapPlayers) *model.GameState {
	out := s.Clone()
	first := *out.GetPlayer(a.First)
	second := *out.GetPlayer(a.Second)
	firstSlot := memberSlot(out, a.First)
	secondSlot := memberSlot(out, a.Second)

	if firstSlot != nil {
		*firstSlot = second
	}
	if secondSlot != nil {
		*secondSlot = first
	}
	return out
}

// memberSlot returns a pointer to the team entry holding the player, or nil
func memberSlot(s *model.GameState, id model.PlayerID) *model.Player {
	for i := range s.Teams {
		for j := range s.Teams[i].Players {
			if s.Teams[i].Players[j].ID == id {
				return &s.Teams[i].Players[j]
			}
		}
	}
	return nil
}

// resolvePlayers maps ids to registered players, skipping unknown ids
func resolvePlayers(s *model.GameState, playerIDs []model.PlayerID) []model.Player {
	players := make([]model.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		if p := s.GetPlayer(id); p != nil {
			players = append(players, *p)
		}
	}
	return players
}

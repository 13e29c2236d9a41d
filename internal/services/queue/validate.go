package queue

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/courtqueue/internal/model"
)

// Validate checks an action against the current state before dispatch.
// Engine.Apply treats any action that fails Validate as a no-op; callers
// use the returned error to tell the user what was wrong.
func Validate(s *model.GameState, action Action) error {
	switch a := action.(type) {
	case AddPlayer:
		if strings.TrimSpace(a.Name) == "" {
			return model.ErrEmptyName
		}
		if HasPlayerNamed(s, a.Name) {
			return model.ErrDuplicatePlayerName
		}
		if a.ID != "" && s.GetPlayer(a.ID) != nil {
			return fmt.Errorf("player %s: %w", a.ID, model.ErrDuplicatePlayerName)
		}
	case RemovePlayer:
		if s.GetPlayer(a.PlayerID) == nil {
			return model.ErrPlayerNotFound
		}
	case CreateTeam:
		if len(a.PlayerIDs) == 0 {
			return model.ErrTeamHasNoPlayers
		}
		return validateMembers(s, "", a.PlayerIDs)
	case EditTeam:
		if s.GetTeam(a.TeamID) == nil {
			return model.ErrTeamNotFound
		}
		return validateMembers(s, a.TeamID, a.PlayerIDs)
	case RemoveTeam:
		if s.GetTeam(a.TeamID) == nil {
			return model.ErrTeamNotFound
		}
	case SetWinner:
		if !s.CurrentGame.IsComplete() {
			return model.ErrNoCompleteGame
		}
		if !s.CurrentGame.Has(a.TeamID) {
			return model.ErrWinnerNotInGame
		}
	case Reorder:
		return validateOrder(s, a.TeamIDs)
	case SwapPlayers:
		for _, id := range []model.PlayerID{a.First, a.Second} {
			if s.GetPlayer(id) == nil {
				return fmt.Errorf("player %s: %w", id, model.ErrPlayerNotFound)
			}
		}
		if a.First == a.Second {
			return model.ErrDuplicateTeamMember
		}
	case InitializeOrReplace:
		if a.State != nil {
			return validateSnapshot(a.State)
		}
	case StartGame, Reset:
	default:
		return model.ErrUnknownAction
	}
	return nil
}

// validateMembers checks a proposed member list for team (empty for a new
// team): size limit, no repeats, every player registered and either
// unassigned or already on this team
func validateMembers(s *model.GameState, team model.TeamID, playerIDs []model.PlayerID) error {
	if len(playerIDs) > model.MaxTeamSize {
		return model.ErrTeamTooLarge
	}
	if dups := lo.FindDuplicates(playerIDs); len(dups) > 0 {
		return fmt.Errorf("player %s: %w", dups[0], model.ErrDuplicateTeamMember)
	}
	for _, id := range playerIDs {
		if s.GetPlayer(id) == nil {
			return fmt.Errorf("player %s: %w", id, model.ErrPlayerNotFound)
		}
		if t := s.TeamOf(id); t != nil && t.ID != team {
			return fmt.Errorf("player %s is on %q: %w", id, t.Name, model.ErrPlayerAlreadyAssigned)
		}
	}
	return nil
}

// validateOrder checks that ids is a permutation of the current team ids
func validateOrder(s *model.GameState, ids []model.TeamID) error {
	if len(ids) != len(s.Teams) || len(lo.Uniq(ids)) != len(ids) {
		return model.ErrInvalidTeamOrder
	}
	for _, id := range ids {
		if s.GetTeam(id) == nil {
			return fmt.Errorf("team %s: %w", id, model.ErrInvalidTeamOrder)
		}
	}
	return nil
}

// validateSnapshot checks a whole replacement state: every id present and
// unique, player names non-blank and unique after folding, teams named and
// within the size limit. Members naming unknown players and stale game slots
// are left for normalize to drop.
func validateSnapshot(s *model.GameState) error {
	names := make(map[string]bool, len(s.Players))
	playerIDs := make(map[model.PlayerID]bool, len(s.Players))
	for _, p := range s.Players {
		if p.ID == "" {
			return fmt.Errorf("player %q: %w", p.Name, model.ErrMissingID)
		}
		if playerIDs[p.ID] {
			return fmt.Errorf("player %s: %w", p.ID, model.ErrDuplicateID)
		}
		playerIDs[p.ID] = true

		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("player %s: %w", p.ID, model.ErrEmptyName)
		}
		key := NameKey(p.Name)
		if names[key] {
			return fmt.Errorf("player %q: %w", p.Name, model.ErrDuplicatePlayerName)
		}
		names[key] = true
	}

	teamIDs := make(map[model.TeamID]bool, len(s.Teams))
	for _, t := range s.Teams {
		if t.ID == "" {
			return fmt.Errorf("team %q: %w", t.Name, model.ErrMissingID)
		}
		if teamIDs[t.ID] {
			return fmt.Errorf("team %s: %w", t.ID, model.ErrDuplicateID)
		}
		teamIDs[t.ID] = true

		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("team %s: %w", t.ID, model.ErrEmptyName)
		}
		if len(t.Players) > model.MaxTeamSize {
			return fmt.Errorf("team %s: %w", t.ID, model.ErrTeamTooLarge)
		}
	}
	return nil
}

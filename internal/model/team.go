package model

// TeamID uniquely identifies a team across the system
type TeamID string

// MaxTeamSize is the largest number of players a team may have
const MaxTeamSize = 3

// Team is a group of up to MaxTeamSize players that plays as a unit.
// Whether a team is playing is not stored here; see GameState.IsPlaying.
type Team struct {
	ID      TeamID
	Name    string
	Players []Player // ordered, 0..MaxTeamSize
}

// HasPlayer reports whether the given player is a member of the team
func (t *Team) HasPlayer(id PlayerID) bool {
	for _, p := range t.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// PlayerIDs returns the ids of the team members in order
func (t *Team) PlayerIDs() []PlayerID {
	ids := make([]PlayerID, len(t.Players))
	for i, p := range t.Players {
		ids[i] = p.ID
	}
	return ids
}

// Clone returns a copy of the team that shares no memory with the original
func (t Team) Clone() Team {
	t.Players = append(make([]Player, 0, len(t.Players)), t.Players...)
	return t
}

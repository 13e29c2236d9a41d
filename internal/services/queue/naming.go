package queue

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/mcoot/courtqueue/internal/dependencies/random"
	"github.com/mcoot/courtqueue/internal/model"
)

// EmptyTeamName is the name given to a generated team with no players
const EmptyTeamName = "Empty Team"

// TeamNameSuffixes are appended to the member initials of a generated name
var TeamNameSuffixes = []string{"Squad", "Crew", "Ballers", "Stars", "Elite", "Force"}

// GenerateTeamName builds a name from the uppercased first letter of each
// member's name followed by a randomly picked suffix, e.g. "ABC Ballers".
// Two calls with the same players may return different names.
func GenerateTeamName(rnd random.Random, players []model.Player) string {
	if len(players) == 0 {
		return EmptyTeamName
	}

	var b strings.Builder
	for _, p := range players {
		r, size := utf8.DecodeRuneInString(strings.TrimSpace(p.Name))
		if size == 0 || r == utf8.RuneError {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	b.WriteByte(' ')
	b.WriteString(TeamNameSuffixes[rnd.Intn(len(TeamNameSuffixes))])
	return b.String()
}

// NameKey returns the form of a player name used for uniqueness checks:
// surrounding whitespace removed and Unicode case folded.
func NameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// HasPlayerNamed reports whether a player with an equivalent name exists
func HasPlayerNamed(s *model.GameState, name string) bool {
	key := NameKey(name)
	for _, p := range s.Players {
		if NameKey(p.Name) == key {
			return true
		}
	}
	return false
}

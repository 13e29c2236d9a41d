package queue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/courtqueue/internal/dependencies/mocks"
	"github.com/mcoot/courtqueue/internal/dependencies/random"
	"github.com/mcoot/courtqueue/internal/model"
)

func TestGenerateTeamNameUsesInitialsAndPickedSuffix(t *testing.T) {
	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(2)

	name := GenerateTeamName(rnd, []model.Player{
		player("p1", "ana"),
		player("p2", "Beto"),
		player("p3", "caio"),
	})

	assert.Equal(t, "ABC Ballers", name)
}

func TestGenerateTeamNameEmptyTeam(t *testing.T) {
	assert.Equal(t, EmptyTeamName, GenerateTeamName(mocks.NewMockRandom(), nil))
}

func TestGenerateTeamNameHandlesUnicodeInitials(t *testing.T) {
	name := GenerateTeamName(mocks.NewMockRandom(), []model.Player{player("p1", "élodie")})

	assert.Equal(t, "É Squad", name)
}

func TestGenerateTeamNameWithRealRandomKeepsAcronym(t *testing.T) {
	players := []model.Player{player("p1", "Ana"), player("p2", "Beto")}
	rnd := random.New()

	for i := 0; i < 20; i++ {
		name := GenerateTeamName(rnd, players)

		assert.True(t, strings.HasPrefix(name, "AB "), name)
		assert.Contains(t, TeamNameSuffixes, strings.TrimPrefix(name, "AB "))
	}
}

func TestNameKeyIgnoresCaseAndSurroundingSpace(t *testing.T) {
	assert.Equal(t, NameKey("Ana"), NameKey("  aNA "))
	assert.NotEqual(t, NameKey("Ana"), NameKey("Anna"))
}

func TestHasPlayerNamed(t *testing.T) {
	s := court("", "", nil, player("p1", "Ana"))

	assert.True(t, HasPlayerNamed(s, "ANA"))
	assert.False(t, HasPlayerNamed(s, "Beto"))
}

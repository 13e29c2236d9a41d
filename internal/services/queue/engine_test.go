package queue

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/courtqueue/internal/dependencies/mocks"
	"github.com/mcoot/courtqueue/internal/model"
)

type EngineSuite struct {
	suite.Suite
	random *mocks.MockRandom
	engine *Engine
	state  *model.GameState
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.engine = NewEngine(mocks.NewSequentialIDs("id"), s.random)
	s.state = model.NewGameState()
}

func (s *EngineSuite) apply(action Action) {
	s.state = s.engine.Apply(s.state, action)
}

func (s *EngineSuite) addPlayers(names ...string) []model.PlayerID {
	ids := make([]model.PlayerID, len(names))
	for i, name := range names {
		ids[i] = model.PlayerID("p-" + name)
		s.apply(AddPlayer{ID: ids[i], Name: name})
	}
	return ids
}

// createTeams creates one single-player team per name, named after the player
func (s *EngineSuite) createTeams(names ...string) []model.TeamID {
	ids := make([]model.TeamID, len(names))
	for i, name := range names {
		p := s.addPlayers(name)
		ids[i] = model.TeamID("t-" + name)
		s.apply(CreateTeam{ID: ids[i], PlayerIDs: p, Name: name})
	}
	return ids
}

// AddPlayer tests

func (s *EngineSuite) TestAddPlayerAppendsToPlayersAndUnassigned() {
	s.apply(AddPlayer{Name: "  Ana  "})

	s.Require().Len(s.state.Players, 1)
	s.Equal(model.PlayerID("id-1"), s.state.Players[0].ID)
	s.Equal("Ana", s.state.Players[0].Name)
	s.Equal(s.state.Players, s.state.UnassignedPlayers)
}

func (s *EngineSuite) TestAddPlayerDuplicateNameIsNoOp() {
	s.addPlayers("Ana")

	s.apply(AddPlayer{Name: "ANA"})

	s.Len(s.state.Players, 1)
}

func (s *EngineSuite) TestAddPlayerEmptyNameIsNoOp() {
	s.apply(AddPlayer{Name: " "})

	s.Empty(s.state.Players)
}

// CreateTeam tests

// Scenario: three players form the first team, which takes slot A alone
func (s *EngineSuite) TestCreateFirstTeamTakesSlotA() {
	players := s.addPlayers("Ana", "Beto", "Caio")
	s.random.QueueIntn(0)

	s.apply(CreateTeam{PlayerIDs: players})

	s.Require().Len(s.state.Teams, 1)
	created := s.state.Teams[0]
	s.Equal("ABC Squad", created.Name)
	s.Equal(players, created.PlayerIDs())
	s.Empty(s.state.UnassignedPlayers)
	s.Equal(model.CurrentGame{TeamA: created.ID}, s.state.CurrentGame)
	s.True(s.state.IsPlaying(created.ID))
}

func (s *EngineSuite) TestCreateSecondTeamTakesSlotB() {
	teams := s.createTeams("Ana", "Beto")

	s.Equal(model.CurrentGame{TeamA: teams[0], TeamB: teams[1]}, s.state.CurrentGame)
}

func (s *EngineSuite) TestCreateThirdTeamWaits() {
	teams := s.createTeams("Ana", "Beto", "Caio")

	s.False(s.state.IsPlaying(teams[2]))
	s.Equal(teams[2], NextTeam(s.state).ID)
}

func (s *EngineSuite) TestCreateTeamKeepsGivenName() {
	players := s.addPlayers("Ana")

	s.apply(CreateTeam{PlayerIDs: players, Name: "  Splash Bros "})

	s.Equal("Splash Bros", s.state.Teams[0].Name)
}

func (s *EngineSuite) TestCreateTeamWithAssignedPlayerIsNoOp() {
	s.createTeams("Ana")
	before := s.state.Clone()

	s.apply(CreateTeam{PlayerIDs: []model.PlayerID{"p-Ana"}})

	s.Empty(stateDiff(before, s.state))
}

// RemovePlayer tests

// Scenario: removing a member of the slot B team empties slot B but keeps the team
func (s *EngineSuite) TestRemovePlayerClearsSlotOfTheirTeam() {
	s.createTeams("Ana")
	players := s.addPlayers("Beto", "Caio")
	s.apply(CreateTeam{ID: "t-BC", PlayerIDs: players, Name: "BC"})
	extra := s.addPlayers("Duda")
	s.Require().Equal(model.CurrentGame{TeamA: "t-Ana", TeamB: "t-BC"}, s.state.CurrentGame)

	s.apply(RemovePlayer{PlayerID: "p-Beto"})

	s.Equal(model.CurrentGame{TeamA: "t-Ana"}, s.state.CurrentGame)
	s.Require().NotNil(s.state.GetTeam("t-BC"))
	s.Equal([]model.PlayerID{"p-Caio"}, s.state.GetTeam("t-BC").PlayerIDs())
	s.Nil(s.state.GetPlayer("p-Beto"))
	s.Equal(extra, playerIDs(s.state.UnassignedPlayers))
}

func (s *EngineSuite) TestRemoveUnassignedPlayer() {
	s.addPlayers("Ana", "Beto")

	s.apply(RemovePlayer{PlayerID: "p-Ana"})

	s.Equal([]model.PlayerID{"p-Beto"}, playerIDs(s.state.Players))
	s.Equal([]model.PlayerID{"p-Beto"}, playerIDs(s.state.UnassignedPlayers))
}

// EditTeam tests

// Scenario: editing a team down to no players keeps it as an empty placeholder
func (s *EngineSuite) TestEditTeamToEmptyRetainsTeam() {
	players := s.addPlayers("Ana", "Beto")
	s.apply(CreateTeam{ID: "t-1", PlayerIDs: players, Name: "AB"})

	s.apply(EditTeam{TeamID: "t-1", PlayerIDs: nil})

	s.Require().Len(s.state.Teams, 1)
	s.Empty(s.state.Teams[0].Players)
	s.Equal(players, playerIDs(s.state.UnassignedPlayers))
}

func (s *EngineSuite) TestEditTeamSwapsMembersAndRenames() {
	players := s.addPlayers("Ana", "Beto", "Caio")
	s.apply(CreateTeam{ID: "t-1", PlayerIDs: players[:2], Name: "AB"})

	s.apply(EditTeam{TeamID: "t-1", PlayerIDs: []model.PlayerID{"p-Caio", "p-Ana"}, Name: "CA"})

	edited := s.state.GetTeam("t-1")
	s.Equal("CA", edited.Name)
	s.Equal([]model.PlayerID{"p-Caio", "p-Ana"}, edited.PlayerIDs())
	s.Equal([]model.PlayerID{"p-Beto"}, playerIDs(s.state.UnassignedPlayers))
}

func (s *EngineSuite) TestEditPlayingTeamIsSeenInItsSlot() {
	s.createTeams("Ana", "Beto")
	extra := s.addPlayers("Caio")

	s.apply(EditTeam{TeamID: "t-Beto", PlayerIDs: append([]model.PlayerID{"p-Beto"}, extra...)})

	s.Equal([]model.PlayerID{"p-Beto", "p-Caio"}, s.state.TeamB().PlayerIDs())
}

func (s *EngineSuite) TestEditTeamBlankNameKeepsName() {
	s.createTeams("Ana")

	s.apply(EditTeam{TeamID: "t-Ana", PlayerIDs: []model.PlayerID{"p-Ana"}, Name: " "})

	s.Equal("Ana", s.state.GetTeam("t-Ana").Name)
}

// RemoveTeam tests

func (s *EngineSuite) TestRemovePlayingTeamRefillsSlot() {
	teams := s.createTeams("Ana", "Beto", "Caio")

	s.apply(RemoveTeam{TeamID: teams[1]})

	s.Equal(model.CurrentGame{TeamA: teams[0], TeamB: teams[2]}, s.state.CurrentGame)
	s.Equal([]model.PlayerID{"p-Beto"}, playerIDs(s.state.UnassignedPlayers))
}

func (s *EngineSuite) TestRemovePlayingTeamWithEmptyQueueLeavesSlotEmpty() {
	teams := s.createTeams("Ana", "Beto")

	s.apply(RemoveTeam{TeamID: teams[0]})

	s.Equal(model.CurrentGame{TeamB: teams[1]}, s.state.CurrentGame)
}

func (s *EngineSuite) TestRemoveWaitingTeam() {
	teams := s.createTeams("Ana", "Beto", "Caio")

	s.apply(RemoveTeam{TeamID: teams[2]})

	s.Equal([]model.TeamID{teams[0], teams[1]}, teamIDs(s.state.Teams))
	s.Equal(model.CurrentGame{TeamA: teams[0], TeamB: teams[1]}, s.state.CurrentGame)
}

// SetWinner tests

func (s *EngineSuite) TestSetWinnerRotatesQueue() {
	teams := s.createTeams("Ana", "Beto", "Caio")

	s.apply(SetWinner{TeamID: teams[0]})

	s.Equal(model.CurrentGame{TeamA: teams[0], TeamB: teams[2]}, s.state.CurrentGame)
	s.Equal([]model.TeamID{teams[0], teams[2], teams[1]}, teamIDs(s.state.Teams))
}

func (s *EngineSuite) TestSetWinnerWithoutQueueThenNewTeamFillsSlotB() {
	teams := s.createTeams("Ana", "Beto")

	s.apply(SetWinner{TeamID: teams[1]})
	s.Equal(model.CurrentGame{TeamA: teams[1]}, s.state.CurrentGame)

	late := s.createTeams("Caio")

	// the loser was queued first
	s.Equal(model.CurrentGame{TeamA: teams[1], TeamB: teams[0]}, s.state.CurrentGame)
	s.False(s.state.IsPlaying(late[0]))
}

func (s *EngineSuite) TestSetWinnerNotInGameIsNoOp() {
	teams := s.createTeams("Ana", "Beto", "Caio")
	before := s.state.Clone()

	s.apply(SetWinner{TeamID: teams[2]})

	s.Empty(stateDiff(before, s.state))
}

// Reorder tests

func (s *EngineSuite) TestReorderReplacesTeamOrderOnly() {
	teams := s.createTeams("Ana", "Beto", "Caio", "Duda")
	game := s.state.CurrentGame

	s.apply(Reorder{TeamIDs: []model.TeamID{teams[3], teams[2], teams[1], teams[0]}})

	s.Equal([]model.TeamID{teams[3], teams[2], teams[1], teams[0]}, teamIDs(s.state.Teams))
	s.Equal(game, s.state.CurrentGame)
	s.Len(s.state.Players, 4)
}

func (s *EngineSuite) TestReorderChangesWhoIsNext() {
	teams := s.createTeams("Ana", "Beto", "Caio", "Duda")

	order, err := MoveTeam(s.state, teams[3], DirectionUp)
	s.Require().NoError(err)
	s.apply(Reorder{TeamIDs: order})

	s.Equal(teams[3], NextTeam(s.state).ID)
}

func (s *EngineSuite) TestReorderPartialListIsNoOp() {
	teams := s.createTeams("Ana", "Beto")

	s.apply(Reorder{TeamIDs: []model.TeamID{teams[1]}})

	s.Equal(teams, teamIDs(s.state.Teams))
}

// SwapPlayers tests

func (s *EngineSuite) TestSwapPlayersBetweenTeams() {
	s.createTeams("Ana", "Beto")

	s.apply(SwapPlayers{First: "p-Ana", Second: "p-Beto"})

	s.Equal([]model.PlayerID{"p-Beto"}, s.state.GetTeam("t-Ana").PlayerIDs())
	s.Equal([]model.PlayerID{"p-Ana"}, s.state.GetTeam("t-Beto").PlayerIDs())
}

func (s *EngineSuite) TestSwapPlayerWithUnassigned() {
	s.createTeams("Ana")
	s.addPlayers("Beto")

	s.apply(SwapPlayers{First: "p-Ana", Second: "p-Beto"})

	s.Equal([]model.PlayerID{"p-Beto"}, s.state.GetTeam("t-Ana").PlayerIDs())
	s.Equal([]model.PlayerID{"p-Ana"}, playerIDs(s.state.UnassignedPlayers))
}

// StartGame tests

func (s *EngineSuite) TestStartGameRefillsAfterPlayerRemoval() {
	s.createTeams("Ana", "Beto")
	players := s.addPlayers("Caio", "Duda")
	s.apply(CreateTeam{ID: "t-CD", PlayerIDs: players, Name: "CD"})
	s.apply(RemovePlayer{PlayerID: "p-Beto"})
	s.Require().Equal(model.CurrentGame{TeamA: "t-Ana"}, s.state.CurrentGame)

	s.apply(StartGame{})

	// t-Beto is empty now, so the next eligible team steps in
	s.Equal(model.CurrentGame{TeamA: "t-Ana", TeamB: "t-CD"}, s.state.CurrentGame)
}

// InitializeOrReplace tests

func (s *EngineSuite) TestReplaceRecomputesDerivedFields() {
	incoming := &model.GameState{
		Players: []model.Player{player("p1", "Ana"), player("p2", "Beto")},
		Teams: []model.Team{
			team("t1", "One", player("p1", "stale name"), player("ghost", "Ghost")),
		},
		CurrentGame:       model.CurrentGame{TeamA: "t1", TeamB: "missing"},
		UnassignedPlayers: []model.Player{player("p1", "Ana")},
		Version:           7,
	}

	s.apply(InitializeOrReplace{State: incoming})

	s.Equal(int64(7), s.state.Version)
	s.Equal([]model.Player{player("p1", "Ana")}, s.state.Teams[0].Players)
	s.Equal(model.CurrentGame{TeamA: "t1"}, s.state.CurrentGame)
	s.Equal([]model.PlayerID{"p2"}, playerIDs(s.state.UnassignedPlayers))
	s.Equal("stale name", incoming.Teams[0].Players[0].Name)
}

func (s *EngineSuite) TestReplaceWithMalformedSnapshotIsNoOp() {
	s.createTeams("Ana")
	before := s.state.Clone()

	incoming := model.NewGameState()
	incoming.Players = []model.Player{
		player("p1", "A"), player("p2", "B"), player("p3", "C"),
		player("p4", "D"), player("p5", "E"), player("p6", "F"), player("p7", "G"),
	}
	incoming.Teams = []model.Team{
		team("big", "Big", incoming.Players[:5]...),
		team("x", "X1", player("p6", "F")),
		team("x", "X2", player("p7", "G")),
	}
	incoming.CurrentGame = model.CurrentGame{TeamA: "big", TeamB: "x"}

	s.apply(InitializeOrReplace{State: incoming})

	s.Empty(stateDiff(before, s.state))
}

func (s *EngineSuite) TestReplaceWithNilIsEmpty() {
	s.createTeams("Ana")

	s.apply(InitializeOrReplace{})

	s.Empty(s.state.Players)
	s.Empty(s.state.Teams)
	s.True(s.state.CurrentGame.IsEmpty())
}

// Reset tests

func (s *EngineSuite) TestResetClearsEverything() {
	s.createTeams("Ana", "Beto")
	s.addPlayers("Caio")
	s.state.Version = 4

	s.apply(Reset{})

	s.Empty(s.state.Players)
	s.Empty(s.state.Teams)
	s.Empty(s.state.UnassignedPlayers)
	s.True(s.state.CurrentGame.IsEmpty())
	s.Equal(int64(4), s.state.Version)
}

func (s *EngineSuite) TestApplyNilStateStartsEmpty() {
	out := s.engine.Apply(nil, AddPlayer{Name: "Ana"})

	s.Len(out.Players, 1)
}

func (s *EngineSuite) TestApplyDoesNotModifyInput() {
	s.createTeams("Ana", "Beto", "Caio")
	input := s.state
	before := input.Clone()

	for _, action := range []Action{
		AddPlayer{Name: "Duda"},
		RemovePlayer{PlayerID: "p-Ana"},
		EditTeam{TeamID: "t-Caio"},
		RemoveTeam{TeamID: "t-Ana"},
		SetWinner{TeamID: "t-Beto"},
		Reorder{TeamIDs: []model.TeamID{"t-Caio", "t-Beto", "t-Ana"}},
		SwapPlayers{First: "p-Ana", Second: "p-Caio"},
		Reset{},
	} {
		_ = s.engine.Apply(input, action)
		s.Empty(stateDiff(before, input), action.Kind())
	}
}

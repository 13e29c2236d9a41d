package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/courtqueue/internal/model"
	"github.com/mcoot/courtqueue/internal/storage/storagetest"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestLoadEmptyStore() {
	state, err := s.storage.LoadSnapshot(s.ctx)
	s.Require().NoError(err)

	s.Empty(state.Players)
	s.Empty(state.Teams)
	s.True(state.CurrentGame.IsEmpty())
	s.Zero(state.Version)
}

func (s *StorageSuite) TestSaveAndLoadSnapshot() {
	court := storagetest.Court()

	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, court))

	loaded, err := s.storage.LoadSnapshot(s.ctx)
	s.Require().NoError(err)
	s.Equal(court, loaded)
}

func (s *StorageSuite) TestSaveCopiesSnapshot() {
	court := storagetest.Court()
	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, court))

	court.Teams[0].Players[0].Name = "changed"
	court.CurrentGame.TeamA = ""

	loaded, err := s.storage.LoadSnapshot(s.ctx)
	s.Require().NoError(err)
	s.Equal("Caio", loaded.Teams[0].Players[0].Name)
	s.Equal(model.TeamID("t-1"), loaded.CurrentGame.TeamA)
}

func (s *StorageSuite) TestLoadReturnsCopy() {
	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, storagetest.Court()))

	first, _ := s.storage.LoadSnapshot(s.ctx)
	first.Players = nil

	second, err := s.storage.LoadSnapshot(s.ctx)
	s.Require().NoError(err)
	s.Len(second.Players, 5)
}

func (s *StorageSuite) TestSaveReplacesSnapshot() {
	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, storagetest.Court()))

	next := model.NewGameState()
	next.Version = 4
	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, next))

	loaded, err := s.storage.LoadSnapshot(s.ctx)
	s.Require().NoError(err)
	s.Empty(loaded.Players)
	s.Equal(int64(4), loaded.Version)
}

func (s *StorageSuite) TestReset() {
	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, storagetest.Court()))

	s.Require().NoError(s.storage.Reset(s.ctx))

	loaded, err := s.storage.LoadSnapshot(s.ctx)
	s.Require().NoError(err)
	s.Empty(loaded.Players)
	s.Zero(loaded.Version)
}

func (s *StorageSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.storage.LoadSnapshot(ctx)
	s.ErrorIs(err, context.Canceled)
	s.ErrorIs(s.storage.SaveSnapshot(ctx, storagetest.Court()), context.Canceled)
}

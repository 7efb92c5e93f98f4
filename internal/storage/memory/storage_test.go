package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/othello/internal/model"
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

func newGame(id model.GameID, createdAt time.Time) *model.Game {
	return &model.Game{
		ID:        id,
		State:     model.GameStateInProgress,
		Position:  model.InitialPosition(),
		Light:     model.HumanSeat(),
		Dark:      model.BotSeat(model.BotStrategyRandom),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func (s *StorageSuite) TestSaveAndGetGame() {
	game := newGame("game-1", time.Now())

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.Position, retrieved.Position)
	s.Equal(game.Dark, retrieved.Dark)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestStoredGameIsNotAliased() {
	game := newGame("game-1", time.Now())
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	// Mutating the caller's copy must not reach the store
	game.Moves = append(game.Moves, model.PassMove(model.LightSide))
	game.State = model.GameStateAbandoned

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Empty(retrieved.Moves)
	s.Equal(model.GameStateInProgress, retrieved.State)

	retrieved.Moves = append(retrieved.Moves, model.PassMove(model.DarkSide))
	again, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Empty(again.Moves)
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.SaveGame(s.ctx, newGame("game-1", time.Now()))

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListGamesOldestFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveGame(s.ctx, newGame("game-b", base.Add(time.Minute)))
	_ = s.storage.SaveGame(s.ctx, newGame("game-a", base.Add(time.Minute)))
	_ = s.storage.SaveGame(s.ctx, newGame("game-c", base))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 3)
	s.Equal(model.GameID("game-c"), games[0].ID)
	s.Equal(model.GameID("game-a"), games[1].ID)
	s.Equal(model.GameID("game-b"), games[2].ID)
}

func (s *StorageSuite) TestListGamesEmpty() {
	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)
}

package storage

import (
	"context"
	"sort"

	"github.com/mcoot/othello/internal/model"
)

// Storage defines the interface for game persistence
type Storage interface {
	// SaveGame creates or replaces a game
	SaveGame(ctx context.Context, game *model.Game) error
	// GetGame returns model.ErrGameNotFound for an unknown id
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	// ListGames returns all stored games, oldest first
	ListGames(ctx context.Context) ([]*model.Game, error)
}

// SortGames orders games by creation time, then id
func SortGames(games []*model.Game) {
	sort.Slice(games, func(i, j int) bool {
		if games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].ID < games[j].ID
		}
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})
}

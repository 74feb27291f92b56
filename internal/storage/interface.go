package storage

import (
	"context"

	"github.com/mcoot/connectfour-go/internal/model"
)

// Storage defines the interface for persisting finished games
type Storage interface {
	SaveGame(ctx context.Context, record *model.GameRecord) error
	GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error)
	// ListGames returns up to limit records, most recently ended first.
	// A limit of zero or less returns every record.
	ListGames(ctx context.Context, limit int) ([]*model.GameRecord, error)
	DeleteGame(ctx context.Context, id model.GameID) error
}

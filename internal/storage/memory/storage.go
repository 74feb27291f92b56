package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Records are copied on the way in and out, matching the Redis backend.
type Storage struct {
	mu    sync.RWMutex
	games map[model.GameID]*model.GameRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameID]*model.GameRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, record *model.GameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[record.ID] = record.Clone()
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return record.Clone(), nil
}

func (s *Storage) ListGames(ctx context.Context, limit int) ([]*model.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*model.GameRecord, 0, len(s.games))
	for _, record := range s.games {
		records = append(records, record.Clone())
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].EndedAt.Equal(records[j].EndedAt) {
			return records[i].ID > records[j].ID
		}
		return records[i].EndedAt.After(records[j].EndedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

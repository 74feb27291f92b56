package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
	logger *slog.Logger
}

// New creates a new Redis storage instance
func New(cfg Config, logger *slog.Logger) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewWithClient(client, cfg, logger), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config, logger *slog.Logger) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "redis_storage")),
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, record *model.GameRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, gameKey(record.ID), data, s.cfg.GameTTL)
	pipe.ZAdd(ctx, gamesIndexKey(), redis.Z{
		Score:  float64(record.EndedAt.UnixMilli()),
		Member: string(record.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var record model.GameRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListGames pages through the index newest first until limit live records are
// found, so expired entries never shorten the result.
func (s *Storage) ListGames(ctx context.Context, limit int) ([]*model.GameRecord, error) {
	records := []*model.GameRecord{}
	var expired []any

	start := int64(0)
	for {
		stop := int64(-1)
		if limit > 0 {
			stop = start + int64(limit-len(records)) - 1
		}

		ids, err := s.client.ZRevRange(ctx, gamesIndexKey(), start, stop).Result()
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			break
		}

		page, missing, err := s.fetchGames(ctx, ids)
		if err != nil {
			return nil, err
		}
		records = append(records, page...)
		expired = append(expired, missing...)

		if stop < 0 || len(records) >= limit {
			break
		}
		start += int64(len(ids))
	}

	// Records past their TTL leave a dangling index entry behind
	if len(expired) > 0 {
		if err := s.client.ZRem(ctx, gamesIndexKey(), expired...).Err(); err != nil {
			s.logger.Warn("failed to prune expired games from index",
				slog.Int("count", len(expired)),
				slog.String("error", err.Error()),
			)
		}
	}

	return records, nil
}

// fetchGames loads the records for ids in one MGET, returning the ids whose
// record has expired separately
func (s *Storage) fetchGames(ctx context.Context, ids []string) ([]*model.GameRecord, []any, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = gameKey(model.GameID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, nil, err
	}

	records := make([]*model.GameRecord, 0, len(values))
	var expired []any
	for i, val := range values {
		if val == nil {
			expired = append(expired, ids[i])
			continue
		}
		str, ok := val.(string)
		if !ok {
			continue
		}
		var record model.GameRecord
		if err := json.Unmarshal([]byte(str), &record); err != nil {
			s.logger.Warn("skipping unreadable game record",
				slog.String("game_id", ids[i]),
				slog.String("error", err.Error()),
			)
			continue
		}
		records = append(records, &record)
	}
	return records, expired, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, gameKey(id))
	pipe.ZRem(ctx, gamesIndexKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}

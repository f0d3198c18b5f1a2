package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/wordgame/internal/model"
	"github.com/mcoot/wordgame/internal/storage"
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
		return nil, err
	}

	return NewWithClient(client, cfg, logger), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config, logger *slog.Logger) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "redis-storage")),
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	key := dictionaryKey()

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}

	return s.client.SMembers(ctx, key).Result()
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	key := dictionaryKey()

	// Delete existing dictionary and add new words atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		members := make([]any, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.SAdd(ctx, key, members...)
	}

	_, err := pipe.Exec(ctx)
	return err
}

// Game result operations

func (s *Storage) SaveGameSummary(ctx context.Context, summary *model.GameSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, summaryKey(summary.ID), data, s.cfg.ResultTTL)
	pipe.ZAdd(ctx, summaryIndexKey(), redis.Z{
		Score:  float64(summary.CompletedAt.UnixMilli()),
		Member: string(summary.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGameSummary(ctx context.Context, id model.GameID) (*model.GameSummary, error) {
	data, err := s.client.Get(ctx, summaryKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var summary model.GameSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// summaryPageSize is how many index entries are read per round trip
const summaryPageSize = 50

func (s *Storage) ListGameSummaries(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	var summaries []*model.GameSummary
	var start int64

	for limit <= 0 || len(summaries) < limit {
		ids, err := s.client.ZRevRange(ctx, summaryIndexKey(), start, start+summaryPageSize-1).Result()
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			break
		}
		start += int64(len(ids))

		expired := 0
		for _, id := range ids {
			if limit > 0 && len(summaries) == limit {
				break
			}
			summary, err := s.GetGameSummary(ctx, model.GameID(id))
			if errors.Is(err, model.ErrGameNotFound) {
				// Expired by TTL; drop the stale index entry
				if err := s.client.ZRem(ctx, summaryIndexKey(), id).Err(); err != nil {
					s.logger.Warn("failed to drop expired summary from index",
						slog.String("game_id", id),
						slog.String("error", err.Error()),
					)
				} else {
					expired++
				}
				continue
			}
			if err != nil {
				return nil, err
			}
			summaries = append(summaries, summary)
		}
		// Removed entries shift the rest of the index up
		start -= int64(expired)
	}
	return summaries, nil
}

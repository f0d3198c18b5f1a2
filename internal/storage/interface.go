package storage

import (
	"context"

	"github.com/mcoot/wordgame/internal/model"
)

// Storage defines the interface for data persistence.
// In-progress games are never persisted; only the dictionary word list and
// the summaries of finished games are kept.
type Storage interface {
	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error

	// Game result operations
	SaveGameSummary(ctx context.Context, summary *model.GameSummary) error
	GetGameSummary(ctx context.Context, id model.GameID) (*model.GameSummary, error)
	// ListGameSummaries returns up to limit summaries, most recent first
	ListGameSummaries(ctx context.Context, limit int) ([]*model.GameSummary, error)
}

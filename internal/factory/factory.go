package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/wordgame/internal/dependencies/clock"
	"github.com/mcoot/wordgame/internal/dependencies/random"
	"github.com/mcoot/wordgame/internal/model"
	"github.com/mcoot/wordgame/internal/services/board"
	"github.com/mcoot/wordgame/internal/services/bot"
	"github.com/mcoot/wordgame/internal/services/dictionary"
	"github.com/mcoot/wordgame/internal/services/game"
	"github.com/mcoot/wordgame/internal/services/scoring"
	"github.com/mcoot/wordgame/internal/storage"
	"github.com/mcoot/wordgame/internal/storage/memory"
	redisstorage "github.com/mcoot/wordgame/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage

	Clock  clock.Clock
	Random random.Random

	DictionaryService *dictionary.Service
	BoardService      *board.Service
	ScoringService    *scoring.Service
	Searcher          *bot.Searcher
	BotService        *bot.Service
	GameController    *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the word list to load. If empty, the dictionary must
	// be loaded manually.
	DictionaryPath string
	// Seed makes tile shuffles reproducible. Zero uses a crypto source.
	Seed uint64
	// Strategy names the computer's search policy, defaulting to greedy
	Strategy string
	// Budget bounds each AI search. Zero fields take DefaultBudget values.
	Budget bot.Budget
	// Logger is the application logger. If nil, output is discarded.
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis").
	// If empty, defaults to "memory".
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig, logger)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	app, err := newWithDependencies(store, clock.New(), rnd, cfg.Strategy, cfg.Budget, logger)
	if err != nil {
		return nil, err
	}

	if cfg.DictionaryPath != "" {
		if err := app.DictionaryService.Load(ctx, cfg.DictionaryPath); err != nil {
			return nil, fmt.Errorf("load dictionary: %w", err)
		}
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	strategy string,
	budget bot.Budget,
	logger *slog.Logger,
) (*App, error) {
	if strategy == "" {
		strategy = model.DefaultBotStrategy
	}
	defaults := bot.DefaultBudget()
	if budget.MaxNodes == 0 {
		budget.MaxNodes = defaults.MaxNodes
	}
	if budget.MaxDuration == 0 {
		budget.MaxDuration = defaults.MaxDuration
	}

	dictService := dictionary.New(store, logger)
	boardService := board.New(dictService, logger)
	scoringService := scoring.New(logger)
	searcher := bot.NewSearcher(boardService, scoringService, clk, budget, logger)
	botService := bot.NewService(boardService, scoringService, bot.NewStrategies(searcher), logger)

	if !botService.HasStrategy(strategy) {
		return nil, fmt.Errorf("unknown bot strategy %q: must be one of %v", strategy, model.ValidBotStrategies())
	}

	gameController := game.NewController(store, boardService, scoringService, botService, clk, rnd, strategy, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		BoardService:      boardService,
		ScoringService:    scoringService,
		Searcher:          searcher,
		BotService:        botService,
		GameController:    gameController,
	}, nil
}

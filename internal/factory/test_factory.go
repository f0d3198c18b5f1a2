package factory

import (
	"time"

	"github.com/mcoot/wordgame/internal/dependencies/mocks"
	"github.com/mcoot/wordgame/internal/model"
	"github.com/mcoot/wordgame/internal/services/bot"
	"github.com/mcoot/wordgame/internal/storage/memory"
	"github.com/mcoot/wordgame/internal/testutil"
)

// TestSearchNodes keeps AI turns in tests fast
const TestSearchNodes = 50_000

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App with mocked clock and random source and a small
// search budget. With no queued random values every shuffle swap picks index
// 0, so the deal is always the same: the human draws tile 0 then 99 down to
// 94, the computer 93 down to 87.
func NewTestApp(strategy string) (*TestApp, error) {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	if strategy == "" {
		strategy = model.DefaultBotStrategy
	}
	budget := bot.Budget{MaxNodes: TestSearchNodes}

	app, err := newWithDependencies(store, mockClock, mockRandom, strategy, budget, testutil.NopLogger())
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}, nil
}

// LoadTestDictionary loads the small shared test word list
func (t *TestApp) LoadTestDictionary() error {
	return t.DictionaryService.LoadWords(testutil.Words())
}

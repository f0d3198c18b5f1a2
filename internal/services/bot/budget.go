package bot

import (
	"context"
	"time"

	"github.com/mcoot/wordgame/internal/dependencies/clock"
)

const (
	DefaultMaxNodes    = 2_000_000
	DefaultMaxDuration = 5 * time.Second

	// The clock and context are polled once per this many nodes
	checkEvery = 256
)

// Budget bounds one move search. Zero fields are unlimited.
type Budget struct {
	// MaxNodes caps the number of candidate placements validated
	MaxNodes int
	// MaxDuration caps wall-clock search time
	MaxDuration time.Duration
}

// DefaultBudget returns the budget used when none is configured
func DefaultBudget() Budget {
	return Budget{
		MaxNodes:    DefaultMaxNodes,
		MaxDuration: DefaultMaxDuration,
	}
}

// Stats describes how much of the budget a search used
type Stats struct {
	Nodes     int
	Elapsed   time.Duration
	Exhausted bool
}

// meter counts search nodes against a Budget
type meter struct {
	ctx     context.Context
	clock   clock.Clock
	budget  Budget
	start   time.Time
	nodes   int
	stopped bool
}

func newMeter(ctx context.Context, clk clock.Clock, budget Budget) *meter {
	return &meter{
		ctx:     ctx,
		clock:   clk,
		budget:  budget,
		start:   clk.Now(),
		stopped: ctx.Err() != nil,
	}
}

// tick records one node. Returns false once the budget is spent.
func (m *meter) tick() bool {
	if m.stopped {
		return false
	}
	m.nodes++

	if m.budget.MaxNodes > 0 && m.nodes > m.budget.MaxNodes {
		m.stopped = true
		return false
	}

	if m.nodes%checkEvery == 0 {
		if m.ctx.Err() != nil {
			m.stopped = true
			return false
		}
		if m.budget.MaxDuration > 0 && clock.Elapsed(m.clock, m.start) > m.budget.MaxDuration {
			m.stopped = true
			return false
		}
	}
	return true
}

func (m *meter) done() bool {
	return m.stopped
}

func (m *meter) stats() Stats {
	return Stats{
		Nodes:     m.nodes,
		Elapsed:   clock.Elapsed(m.clock, m.start),
		Exhausted: m.stopped,
	}
}

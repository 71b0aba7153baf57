package engine

import "time"

// UnlimitedRemainingMs and UnlimitedIncrementMs are the sentinel time-control
// values meaning "effectively unlimited", used when the caller specified
// only a search depth or a perft bound rather than a time budget.
const (
	UnlimitedRemainingMs int64 = 2147483647
	UnlimitedIncrementMs int64 = 0

	thinkingTimeRatio = 20
)

// Timer converts a remaining-time-plus-increment time control into a
// thinking budget and exposes a cheap elapsed probe. Search checks it once
// per iterative-deepening depth, and the per-node loops sample it every
// timeCheckMask+1 nodes (see SearchContext.timeUp).
type Timer struct {
	budget time.Duration
	start  time.Time
}

// Start sets the thinking budget to max(remainingMs/20, incrementMs) and
// records the start instant.
func (t *Timer) Start(remainingMs, incrementMs int64) {
	budgetMs := remainingMs / thinkingTimeRatio
	if incrementMs > budgetMs {
		budgetMs = incrementMs
	}
	t.budget = time.Duration(budgetMs) * time.Millisecond
	t.start = time.Now()
}

// Elapsed reports whether the thinking budget has been exceeded.
func (t *Timer) Elapsed() bool {
	return time.Since(t.start) > t.budget
}

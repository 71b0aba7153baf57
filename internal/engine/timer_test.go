package engine

import (
	"testing"
	"time"
)

func TestTimerBudgetUsesRemainingOverTwenty(t *testing.T) {
	var timer Timer
	timer.Start(2000, 0)
	if timer.budget != 100*time.Millisecond {
		t.Fatalf("expected budget 100ms from remaining=2000ms, got %s", timer.budget)
	}
}

func TestTimerBudgetUsesIncrementWhenLarger(t *testing.T) {
	var timer Timer
	timer.Start(100, 500)
	if timer.budget != 500*time.Millisecond {
		t.Fatalf("expected budget to fall back to increment 500ms, got %s", timer.budget)
	}
}

func TestTimerNotElapsedImmediately(t *testing.T) {
	var timer Timer
	timer.Start(UnlimitedRemainingMs, UnlimitedIncrementMs)
	if timer.Elapsed() {
		t.Fatalf("expected an unlimited timer not to report elapsed immediately")
	}
}

func TestTimerElapsedAfterBudget(t *testing.T) {
	var timer Timer
	timer.Start(20, 0) // budget = 1ms
	time.Sleep(5 * time.Millisecond)
	if !timer.Elapsed() {
		t.Fatalf("expected timer to report elapsed after its budget passed")
	}
}

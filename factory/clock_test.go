package factory_test

import (
	"context"
	"testing"
	"time"

	"github.com/mickamy/factorygen/factory"
)

func TestNowUsesClockFromContext(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	ctx := factory.WithClock(context.Background(), factory.FixedClock(fixed))

	if got := factory.Now(ctx); !got.Equal(fixed) {
		t.Errorf("Now = %v, want %v", got, fixed)
	}
}

func TestNowFallsBackToWallClock(t *testing.T) {
	t.Parallel()

	before := time.Now()
	got := factory.Now(context.Background())
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("Now = %v, want between %v and %v", got, before, after)
	}
}

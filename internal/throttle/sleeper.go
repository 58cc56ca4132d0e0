// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package throttle

import (
	"context"
	"time"
)

// Sleeper blocks for a duration or until ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts an ordinary function to [Sleeper].
type SleeperFunc func(ctx context.Context, d time.Duration) error

func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// TimerSleeper is the real-clock [Sleeper].
type TimerSleeper struct{}

// NewTimerSleeper returns a [Sleeper] backed by time.Timer.
func NewTimerSleeper() *TimerSleeper {
	return &TimerSleeper{}
}

// Sleep waits for d. A non-positive d only checks ctx.
func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

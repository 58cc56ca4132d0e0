// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package throttle

import (
	"context"
	"time"
)

// Gate is passed between two consecutive mutations.
type Gate interface {
	Wait(ctx context.Context) error
}

// FixedInterval is a [Gate] that waits the same interval every time.
type FixedInterval struct {
	interval time.Duration
	sleeper  Sleeper
}

// NewFixedInterval returns a gate waiting d on sleeper. A nil sleeper means
// [TimerSleeper]. Negative intervals are treated as zero.
func NewFixedInterval(d time.Duration, sleeper Sleeper) *FixedInterval {
	if sleeper == nil {
		sleeper = NewTimerSleeper()
	}
	if d < 0 {
		d = 0
	}
	return &FixedInterval{interval: d, sleeper: sleeper}
}

// Interval returns the configured wait.
func (g *FixedInterval) Interval() time.Duration {
	return g.interval
}

// Wait implements [Gate]. With a zero interval it returns immediately unless
// ctx is already done.
func (g *FixedInterval) Wait(ctx context.Context) error {
	if g.interval == 0 {
		return ctx.Err()
	}
	return g.sleeper.Sleep(ctx, g.interval)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package throttle provides the context-aware waiting primitives used by the
// unfollow executor.
//
// A [Sleeper] performs a single cancellable wait (retry backoff); a [Gate]
// spaces out consecutive mutations. Both return ctx.Err() as soon as the
// context is done, so a cancelled run never sits out a pending delay.
package throttle

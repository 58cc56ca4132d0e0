// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the unfollow engine of gitstalker: credential
// validation, follower reconciliation, the throttled unfollow executor and
// its background job, and whitelist management.
package service

import (
	"context"
	"time"

	"github.com/ashd19/gitStalker/models"
)

// SessionService owns the GitHub credential of the process.
type SessionService interface {
	// Validate stores the trimmed token on the adapter and resolves the
	// owning account with one GET /user. Any failure (empty token, 401,
	// network) returns false and clears the token. It never returns an
	// error.
	Validate(ctx context.Context, token string) (models.Identity, bool)

	// Identity returns the account resolved by the last successful
	// Validate.
	Identity() (models.Identity, bool)
}

// ReconcilerService computes which followed accounts do not follow back.
type ReconcilerService interface {
	// ListFollowers returns every follower of the authenticated user in
	// server order.
	ListFollowers(ctx context.Context) ([]models.Identity, error)

	// ListFollowing returns every account the authenticated user follows in
	// server order.
	ListFollowing(ctx context.Context) ([]models.Identity, error)

	// ComputeCandidates fetches the identity and both listings and returns
	// following minus followers minus whitelist.
	ComputeCandidates(ctx context.Context, whitelist models.Whitelist) (models.Reconciliation, error)
}

// UnfollowService is the sequential unfollow executor.
type UnfollowService interface {
	// Run unfollows candidates one at a time in input order, waiting delay
	// between positions, and returns the summary. onProgress may be nil.
	// Cancelling ctx ends the run early with a partial, cancelled record.
	Run(ctx context.Context, candidates []models.Identity, whitelist models.Whitelist,
		delay time.Duration, onProgress models.ProgressFunc) models.OutcomeRecord

	// AttemptUnfollow issues up to maxRetries DELETE requests for login with
	// backoff between them. A non-positive maxRetries means the configured
	// default. Exhaustion returns a [*RetriesExhaustedError].
	AttemptUnfollow(ctx context.Context, login string, maxRetries int) error
}

// UnfollowJob runs the executor in the background and streams its events.
type UnfollowJob interface {
	// Start launches a run over candidates and returns its event channel.
	// Progress events come first, the outcome event last, then the channel
	// is closed. Returns [ErrSessionNotValidated] without a valid session
	// and [ErrRunInProgress] while another run is active.
	Start(ctx context.Context, candidates []models.Identity, whitelist models.Whitelist) (<-chan models.RunEvent, error)

	// Stop cancels the active run, if any, and blocks until it has fully
	// terminated. Safe to call when nothing is running.
	Stop()

	// Running reports whether a run is active.
	Running() bool
}

// WhitelistService manages the persisted per-owner whitelist. Every method
// returns the whitelist as stored after the operation.
type WhitelistService interface {
	Load(ctx context.Context, owner string) (models.Whitelist, error)
	Add(ctx context.Context, owner, login string) (models.Whitelist, error)
	Remove(ctx context.Context, owner, login string) (models.Whitelist, error)
	Save(ctx context.Context, owner string, logins []string) (models.Whitelist, error)
}

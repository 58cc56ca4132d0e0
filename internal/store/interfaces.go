// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the whitelist of logins that must never be
// unfollowed.
//
// The whitelist is the only durable state of gitstalker: unfollow runs,
// follower listings and outcomes are never written here. Entries are keyed
// by the owner login, so every GitHub account keeps its own list.
//
// Two SQL backends are supported behind the same [WhitelistRepository]:
// SQLite (default, a local file) and PostgreSQL (DSN starting with
// postgres:// or postgresql://). The schema is created by goose migrations
// embedded in the migrations package.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/whitelist_repository_mock.go -package=mock

// WhitelistRepository is the low-level whitelist storage.
type WhitelistRepository interface {
	// List returns the owner's whitelisted logins in insertion order.
	List(ctx context.Context, owner string) ([]string, error)

	// Add appends login to the owner's whitelist. Returns
	// [ErrAlreadyWhitelisted] if it is already present.
	Add(ctx context.Context, owner, login string) error

	// Remove deletes login from the owner's whitelist. Returns
	// [ErrNotWhitelisted] if it was not present.
	Remove(ctx context.Context, owner, login string) error

	// Replace atomically swaps the owner's whitelist for logins, keeping
	// their order.
	Replace(ctx context.Context, owner string, logins []string) error
}

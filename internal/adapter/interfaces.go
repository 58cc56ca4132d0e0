// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the GitHub
// REST API.
//
// The primary abstraction is [GitHubAdapter], which decouples the service
// layer from the HTTP client. The package ships a resty-based implementation
// ([NewHTTPGitHubAdapter]).
//
// Every non-2xx response is normalised into a [*TransportError] carrying the
// status code and the optional Retry-After hint. TransportError unwraps to a
// sentinel defined in errors.go, so callers can use [errors.Is] (e.g.
// [ErrUnauthorized] for 401, [ErrRateLimited] for 429) or [IsRateLimit].
package adapter

import (
	"context"

	"github.com/ashd19/gitStalker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/github_adapter_mock.go -package=mock

// GitHubAdapter defines the GitHub operations the unfollow engine needs.
// Implementations attach the bearer token, the API version header, and map
// transport failures to the error values of this package.
type GitHubAdapter interface {
	// SetToken stores the personal access token attached to all subsequent
	// requests. An empty token clears it.
	SetToken(token string)

	// Token returns the token currently stored in the adapter, or an empty
	// string if none has been set.
	Token() string

	// CurrentUser resolves the token owner via GET /user.
	CurrentUser(ctx context.Context) (models.Identity, error)

	// ListFollowers fetches one page of GET /user/followers. page is 1-based.
	// Returns [ErrNotListing] if the response body is not a JSON array.
	ListFollowers(ctx context.Context, page, perPage int) ([]models.Identity, error)

	// ListFollowing fetches one page of GET /user/following. page is 1-based.
	// Returns [ErrNotListing] if the response body is not a JSON array.
	ListFollowing(ctx context.Context, page, perPage int) ([]models.Identity, error)

	// Unfollow removes the following relationship with login via
	// DELETE /user/following/{login}.
	Unfollow(ctx context.Context, login string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/ashd19/gitStalker/internal/config"
	"github.com/ashd19/gitStalker/internal/logger"
	"github.com/ashd19/gitStalker/internal/utils"
	"github.com/ashd19/gitStalker/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathCurrentUser = "/user"
	pathFollowers   = "/user/followers"
	pathFollowing   = "/user/following"
	pathUnfollow    = "/user/following/{username}"
)

type httpGitHubAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPGitHubAdapter constructs a resty implementation of [GitHubAdapter].
// It normalises the base URL from cfg.APIAddress, sets the request timeout,
// and the Accept / X-GitHub-Api-Version headers sent with every request.
// A token from cfg is stored right away but is not validated.
//
// Returns an error if cfg.APIAddress is empty or cannot be parsed as a URL.
func NewHTTPGitHubAdapter(cfg config.GitHub, logger *logger.Logger) (GitHubAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid github api address: %w", err)
	}

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = config.DefaultAPIVersion
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("X-GitHub-Api-Version", apiVersion)

	a := &httpGitHubAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [GitHubAdapter]. The token is whitespace-trimmed.
func (h *httpGitHubAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [GitHubAdapter].
func (h *httpGitHubAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// CurrentUser implements [GitHubAdapter]. Returns a [*TransportError]
// unwrapping to [ErrUnauthorized] for a bad or expired token.
func (h *httpGitHubAdapter) CurrentUser(ctx context.Context) (models.Identity, error) {
	resp, err := h.authedRequest(ctx).Get(pathCurrentUser)
	if err != nil {
		return models.Identity{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	var identity models.Identity
	if err = json.Unmarshal(resp.Body(), &identity); err != nil {
		return models.Identity{}, fmt.Errorf("decode current user response: %w", err)
	}
	if identity.Login == "" {
		return models.Identity{}, fmt.Errorf("decode current user response: empty login")
	}

	return identity, nil
}

// ListFollowers implements [GitHubAdapter].
func (h *httpGitHubAdapter) ListFollowers(ctx context.Context, page, perPage int) ([]models.Identity, error) {
	return h.listPage(ctx, pathFollowers, page, perPage)
}

// ListFollowing implements [GitHubAdapter].
func (h *httpGitHubAdapter) ListFollowing(ctx context.Context, page, perPage int) ([]models.Identity, error) {
	return h.listPage(ctx, pathFollowing, page, perPage)
}

func (h *httpGitHubAdapter) listPage(ctx context.Context, path string, page, perPage int) ([]models.Identity, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"per_page": strconv.Itoa(perPage),
			"page":     strconv.Itoa(page),
		}).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("list %s page %d request: %w", path, page, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || body[0] != '[' {
		h.logger.Warn().
			Str("path", path).
			Int("page", page).
			Msg("listing response is not an array")
		return nil, ErrNotListing
	}

	var items []models.Identity
	if err = json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode %s page %d: %w", path, page, err)
	}

	return items, nil
}

// Unfollow implements [GitHubAdapter]. GitHub answers 204 on success.
func (h *httpGitHubAdapter) Unfollow(ctx context.Context, login string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("username", login).
		Delete(pathUnfollow)
	if err != nil {
		return fmt.Errorf("unfollow %s request: %w", login, err)
	}

	return mapHTTPError(resp)
}

func (h *httpGitHubAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/ashd19/gitStalker/internal/adapter"
	"github.com/ashd19/gitStalker/internal/config"
	"github.com/ashd19/gitStalker/internal/logger"
	"github.com/ashd19/gitStalker/internal/throttle"
	"github.com/ashd19/gitStalker/models"
)

const (
	rateLimitBackoffUnit = time.Second
	failureBackoffUnit   = 500 * time.Millisecond
)

type unfollowService struct {
	adapter    adapter.GitHubAdapter
	sleeper    throttle.Sleeper
	maxRetries int
	logger     *logger.Logger
}

// NewUnfollowService creates the unfollow executor. cfg.MaxRetries is the
// default attempt count; values below 1 fall back to
// config.DefaultMaxRetries.
func NewUnfollowService(githubAdapter adapter.GitHubAdapter, cfg config.Unfollow, logger *logger.Logger) UnfollowService {
	return newUnfollowService(githubAdapter, cfg, throttle.NewTimerSleeper(), logger)
}

func newUnfollowService(githubAdapter adapter.GitHubAdapter, cfg config.Unfollow, sleeper throttle.Sleeper, logger *logger.Logger) *unfollowService {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = config.DefaultMaxRetries
	}
	return &unfollowService{
		adapter:    githubAdapter,
		sleeper:    sleeper,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// Run implements UnfollowService.
//
// Whitelisted logins are skipped without a progress event or outcome entry,
// but their position still counts toward TotalProcessed and is still
// followed by the inter-item wait. A login whose attempt is cut short by
// cancellation is not recorded.
func (s *unfollowService) Run(ctx context.Context, candidates []models.Identity, whitelist models.Whitelist,
	delay time.Duration, onProgress models.ProgressFunc) models.OutcomeRecord {
	log := logger.FromContextOr(ctx, s.logger)

	total := len(candidates)
	outcome := models.OutcomeRecord{
		Unfollowed: make([]string, 0),
		Failed:     make([]models.FailedUnfollow, 0),
	}
	gate := throttle.NewFixedInterval(delay, s.sleeper)

	log.Info().Int("total", total).Dur("delay", delay).Int("max_retries", s.maxRetries).Msg("unfollow run started")

	for i, candidate := range candidates {
		if ctx.Err() != nil {
			outcome.Cancelled = true
			break
		}

		login := candidate.Login
		if whitelist.Contains(login) {
			log.Debug().Str("login", login).Msg("whitelisted, skipped")
		} else {
			if onProgress != nil {
				onProgress(models.ProgressEvent{Current: i + 1, Total: total, Login: login})
			}

			err := s.AttemptUnfollow(ctx, login, s.maxRetries)
			if err != nil && ctx.Err() != nil {
				outcome.Cancelled = true
				break
			}
			if err != nil {
				log.Warn().Err(err).Str("login", login).Msg("unfollow failed")
				outcome.Failed = append(outcome.Failed, models.FailedUnfollow{Login: login, Reason: err.Error()})
			} else {
				outcome.Unfollowed = append(outcome.Unfollowed, login)
			}
		}
		outcome.TotalProcessed = i + 1

		if i < total-1 {
			if err := gate.Wait(ctx); err != nil {
				outcome.Cancelled = true
				break
			}
		}
	}

	outcome.Finish(total)

	log.Info().
		Bool("cancelled", outcome.Cancelled).
		Int("processed", outcome.TotalProcessed).
		Int("unfollowed", len(outcome.Unfollowed)).
		Int("failed", len(outcome.Failed)).
		Msg(outcome.Message)

	return outcome
}

// AttemptUnfollow implements UnfollowService. There is no wait after the
// final attempt.
func (s *unfollowService) AttemptUnfollow(ctx context.Context, login string, maxRetries int) error {
	log := logger.FromContextOr(ctx, s.logger)

	if maxRetries < 1 {
		maxRetries = s.maxRetries
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := s.adapter.Unfollow(ctx, login)
		if err == nil {
			log.Debug().Str("login", login).Int("attempt", attempt).Msg("unfollowed")
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		lastErr = err

		if attempt == maxRetries {
			break
		}

		wait := backoff(err, attempt)
		event := log.Warn().Err(err).Str("login", login).Int("attempt", attempt).Dur("backoff", wait)
		if te, ok := adapter.AsTransportError(err); ok {
			event = event.Int("status", te.Status)
		}
		event.Msg("unfollow attempt failed, backing off")

		if err = s.sleeper.Sleep(ctx, wait); err != nil {
			return err
		}
	}

	return &RetriesExhaustedError{Attempts: maxRetries, Err: lastErr}
}

// backoff returns the wait after a failed attempt (1-based). Rate limits
// honour Retry-After and otherwise wait 2^attempt seconds; other failures
// wait 2^attempt * 500ms.
func backoff(err error, attempt int) time.Duration {
	factor := time.Duration(1) << attempt

	if adapter.IsRateLimit(err) {
		if te, ok := adapter.AsTransportError(err); ok && te.RetryAfterSeconds > 0 {
			return time.Duration(te.RetryAfterSeconds) * time.Second
		}
		return factor * rateLimitBackoffUnit
	}

	return factor * failureBackoffUnit
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashd19/gitStalker/internal/adapter"
	"github.com/ashd19/gitStalker/internal/logger"
	"github.com/ashd19/gitStalker/models"
	"golang.org/x/sync/errgroup"
)

// MaxPageSize is the largest per_page value GitHub accepts.
const MaxPageSize = 100

type listPageFunc func(ctx context.Context, page, perPage int) ([]models.Identity, error)

type reconcilerService struct {
	adapter  adapter.GitHubAdapter
	pageSize int
	logger   *logger.Logger
}

// NewReconcilerService creates a ReconcilerService. pageSize is clamped to
// [1, MaxPageSize]; non-positive values mean MaxPageSize.
func NewReconcilerService(githubAdapter adapter.GitHubAdapter, pageSize int, logger *logger.Logger) ReconcilerService {
	return &reconcilerService{
		adapter:  githubAdapter,
		pageSize: clampPageSize(pageSize),
		logger:   logger,
	}
}

func clampPageSize(pageSize int) int {
	if pageSize <= 0 || pageSize > MaxPageSize {
		return MaxPageSize
	}
	return pageSize
}

// ListFollowers implements ReconcilerService.
func (r *reconcilerService) ListFollowers(ctx context.Context) ([]models.Identity, error) {
	return r.paginate(ctx, "followers", r.adapter.ListFollowers)
}

// ListFollowing implements ReconcilerService.
func (r *reconcilerService) ListFollowing(ctx context.Context) ([]models.Identity, error) {
	return r.paginate(ctx, "following", r.adapter.ListFollowing)
}

// paginate fetches pages 1, 2, ... until a short page or a non-listing body.
func (r *reconcilerService) paginate(ctx context.Context, name string, fetch listPageFunc) ([]models.Identity, error) {
	log := logger.FromContextOr(ctx, r.logger)

	results := make([]models.Identity, 0)
	for page := 1; ; page++ {
		items, err := fetch(ctx, page, r.pageSize)
		if errors.Is(err, adapter.ErrNotListing) {
			break
		}
		if err != nil {
			log.Err(err).Str("func", "*reconcilerService.paginate").Str("listing", name).Int("page", page).Msg("listing page failed")
			return nil, fmt.Errorf("list %s page %d: %w", name, page, err)
		}

		results = append(results, items...)
		if len(items) < r.pageSize {
			break
		}
	}

	log.Debug().Str("listing", name).Int("count", len(results)).Msg("listing fetched")
	return results, nil
}

// ComputeCandidates implements ReconcilerService. Followers and following are
// fetched concurrently; the first failure cancels the other fetch.
func (r *reconcilerService) ComputeCandidates(ctx context.Context, whitelist models.Whitelist) (models.Reconciliation, error) {
	log := logger.FromContextOr(ctx, r.logger)

	identity, err := r.adapter.CurrentUser(ctx)
	if err != nil {
		return models.Reconciliation{}, fmt.Errorf("fetch current user: %w", err)
	}

	var followers, following []models.Identity
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		followers, err = r.ListFollowers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		following, err = r.ListFollowing(gctx)
		return err
	})
	if err = g.Wait(); err != nil {
		return models.Reconciliation{}, err
	}

	candidates := FilterCandidates(following, followers, whitelist)

	log.Info().
		Str("login", identity.Login).
		Int("followers", len(followers)).
		Int("following", len(following)).
		Int("whitelisted", whitelist.Len()).
		Int("candidates", len(candidates)).
		Msg("reconciliation computed")

	return models.Reconciliation{
		Identity:         identity,
		Followers:        followers,
		Following:        following,
		NotFollowingBack: candidates,
	}, nil
}

// FilterCandidates returns the entries of following whose login is neither
// among followers nor whitelisted, in the order of following.
func FilterCandidates(following, followers []models.Identity, whitelist models.Whitelist) []models.Identity {
	followerLogins := make(map[string]struct{}, len(followers))
	for _, f := range followers {
		followerLogins[f.Login] = struct{}{}
	}

	candidates := make([]models.Identity, 0)
	for _, f := range following {
		if _, ok := followerLogins[f.Login]; ok {
			continue
		}
		if whitelist.Contains(f.Login) {
			continue
		}
		candidates = append(candidates, f)
	}
	return candidates
}

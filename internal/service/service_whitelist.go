package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ashd19/gitStalker/internal/logger"
	"github.com/ashd19/gitStalker/internal/store"
	"github.com/ashd19/gitStalker/internal/validators"
	"github.com/ashd19/gitStalker/models"
)

type whitelistService struct {
	repo      store.WhitelistRepository
	validator validators.Validator
	logger    *logger.Logger
}

// NewWhitelistService creates a WhitelistService over the whitelist
// repository of storages.
func NewWhitelistService(storages *store.Storages, logger *logger.Logger) WhitelistService {
	return &whitelistService{
		repo:      storages.WhitelistRepository,
		validator: validators.NewLoginValidator(),
		logger:    logger,
	}
}

// Load implements WhitelistService.
func (w *whitelistService) Load(ctx context.Context, owner string) (models.Whitelist, error) {
	owner, err := normalizeOwner(owner)
	if err != nil {
		return models.Whitelist{}, err
	}

	logins, err := w.repo.List(ctx, owner)
	if err != nil {
		return models.Whitelist{}, fmt.Errorf("load whitelist of %s: %w", owner, err)
	}

	return models.NewWhitelist(logins...), nil
}

// Add implements WhitelistService. Adding a login that is already present is
// a no-op.
func (w *whitelistService) Add(ctx context.Context, owner, login string) (models.Whitelist, error) {
	owner, err := normalizeOwner(owner)
	if err != nil {
		return models.Whitelist{}, err
	}
	login = strings.TrimSpace(login)
	if login == "" {
		return models.Whitelist{}, ErrEmptyLogin
	}
	if err = w.validator.Validate(ctx, login); err != nil {
		return models.Whitelist{}, fmt.Errorf("add %s to whitelist: %w", login, err)
	}

	err = w.repo.Add(ctx, owner, login)
	switch {
	case errors.Is(err, store.ErrAlreadyWhitelisted):
		logger.FromContextOr(ctx, w.logger).Debug().Str("owner", owner).Str("login", login).Msg("login already whitelisted")
	case err != nil:
		return models.Whitelist{}, fmt.Errorf("add %s to whitelist: %w", login, err)
	}

	return w.Load(ctx, owner)
}

// Remove implements WhitelistService. Removing a login that is not present
// is a no-op.
func (w *whitelistService) Remove(ctx context.Context, owner, login string) (models.Whitelist, error) {
	owner, err := normalizeOwner(owner)
	if err != nil {
		return models.Whitelist{}, err
	}
	login = strings.TrimSpace(login)
	if login == "" {
		return models.Whitelist{}, ErrEmptyLogin
	}

	if err = w.repo.Remove(ctx, owner, login); err != nil && !errors.Is(err, store.ErrNotWhitelisted) {
		return models.Whitelist{}, fmt.Errorf("remove %s from whitelist: %w", login, err)
	}

	return w.Load(ctx, owner)
}

// Save implements WhitelistService. logins are normalised the same way as
// [models.NewWhitelist] before they replace the stored list.
func (w *whitelistService) Save(ctx context.Context, owner string, logins []string) (models.Whitelist, error) {
	owner, err := normalizeOwner(owner)
	if err != nil {
		return models.Whitelist{}, err
	}

	whitelist := models.NewWhitelist(logins...)
	if err = w.validator.Validate(ctx, whitelist); err != nil {
		return models.Whitelist{}, fmt.Errorf("save whitelist of %s: %w", owner, err)
	}
	if err = w.repo.Replace(ctx, owner, whitelist.Logins()); err != nil {
		return models.Whitelist{}, fmt.Errorf("save whitelist of %s: %w", owner, err)
	}

	logger.FromContextOr(ctx, w.logger).Info().Str("owner", owner).Int("count", whitelist.Len()).Msg("whitelist saved")
	return whitelist, nil
}

func normalizeOwner(owner string) (string, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return "", ErrEmptyOwner
	}
	return owner, nil
}

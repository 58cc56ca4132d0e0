package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup. Page sizes above the API maximum are accepted here and clamped by
// the reconciler.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.GitHub.APIAddress) == "" {
		return fmt.Errorf("%w: empty api address", ErrInvalidGitHubConfigs)
	}
	if cfg.GitHub.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidGitHubConfigs)
	}

	if cfg.Unfollow.MaxRetries < 1 {
		return fmt.Errorf("%w: max retries must be at least 1", ErrInvalidUnfollowConfigs)
	}
	if cfg.Unfollow.Delay < 0 {
		return fmt.Errorf("%w: delay must not be negative", ErrInvalidUnfollowConfigs)
	}
	if cfg.Unfollow.PageSize < 0 {
		return fmt.Errorf("%w: page size must not be negative", ErrInvalidUnfollowConfigs)
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

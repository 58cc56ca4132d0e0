package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidGitHubConfigs indicates invalid GitHub transport settings
	// (for example, empty API address or non-positive request timeout).
	ErrInvalidGitHubConfigs = errors.New("invalid github configuration")
	// ErrInvalidUnfollowConfigs indicates invalid executor settings
	// (for example, zero retries or negative delay).
	ErrInvalidUnfollowConfigs = errors.New("invalid unfollow configuration")
	// ErrInvalidStorageConfigs indicates an empty whitelist database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)

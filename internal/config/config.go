// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: log destination and run mode.
	App App `envPrefix:"APP_"`

	// GitHub holds the API endpoint, credential and transport timeouts.
	GitHub GitHub `envPrefix:"GITHUB_"`

	// Unfollow holds throttling and retry settings of the unfollow run.
	Unfollow Unfollow `envPrefix:"UNFOLLOW_"`

	// Storage holds the whitelist database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is where the TUI client writes its logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Headless switches from the terminal wizard to plain line output.
	// Env: APP_HEADLESS
	Headless bool `env:"HEADLESS"`

	// AssumeYes skips the confirmation prompt in headless mode.
	// Env: APP_ASSUME_YES
	AssumeYes bool `env:"ASSUME_YES"`

	// Whitelist replaces the stored whitelist in headless mode when set.
	// Env: APP_WHITELIST (comma separated)
	Whitelist []string `env:"WHITELIST" envSeparator:","`
}

// GitHub holds settings of the GitHub REST transport.
type GitHub struct {
	// APIAddress is the REST API base URL. Override it for GitHub Enterprise.
	// Env: GITHUB_API_ADDRESS
	APIAddress string `env:"API_ADDRESS"`

	// Token is a personal access token with the user:follow scope.
	// Env: GITHUB_TOKEN
	Token string `env:"TOKEN"`

	// APIVersion is sent as the X-GitHub-Api-Version header.
	// Env: GITHUB_API_VERSION
	APIVersion string `env:"API_VERSION"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: GITHUB_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Unfollow holds settings of the unfollow executor.
type Unfollow struct {
	// Delay is the pause between two consecutive candidates.
	// Env: UNFOLLOW_DELAY
	Delay time.Duration `env:"DELAY"`

	// MaxRetries is the number of attempts per login before it is reported
	// as failed.
	// Env: UNFOLLOW_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// PageSize is the per_page value of listing requests, clamped to 100.
	// Env: UNFOLLOW_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the whitelist database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings of the whitelist database.
type DB struct {
	// DSN is either a SQLite file path or a postgres:// connection string.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Default values applied before any other source.
const (
	DefaultAPIAddress     = "https://api.github.com"
	DefaultAPIVersion     = "2022-11-28"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDelay          = time.Second
	DefaultMaxRetries     = 3
	DefaultPageSize       = 100
	DefaultDSN            = "gitstalker.db"
	DefaultLogFile        = "gitstalker.log"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogFile: DefaultLogFile},
		GitHub: GitHub{
			APIAddress:     DefaultAPIAddress,
			APIVersion:     DefaultAPIVersion,
			RequestTimeout: DefaultRequestTimeout,
		},
		Unfollow: Unfollow{
			Delay:      DefaultDelay,
			MaxRetries: DefaultMaxRetries,
			PageSize:   DefaultPageSize,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags (os.Args)
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "empty api address", mutate: func(cfg *StructuredConfig) { cfg.GitHub.APIAddress = " " }, wantErr: ErrInvalidGitHubConfigs},
		{name: "zero timeout", mutate: func(cfg *StructuredConfig) { cfg.GitHub.RequestTimeout = 0 }, wantErr: ErrInvalidGitHubConfigs},
		{name: "zero retries", mutate: func(cfg *StructuredConfig) { cfg.Unfollow.MaxRetries = 0 }, wantErr: ErrInvalidUnfollowConfigs},
		{name: "negative delay", mutate: func(cfg *StructuredConfig) { cfg.Unfollow.Delay = -1 }, wantErr: ErrInvalidUnfollowConfigs},
		{name: "negative page size", mutate: func(cfg *StructuredConfig) { cfg.Unfollow.PageSize = -5 }, wantErr: ErrInvalidUnfollowConfigs},
		{name: "page size above api max is clamped later", mutate: func(cfg *StructuredConfig) { cfg.Unfollow.PageSize = 500 }},
		{name: "zero delay allowed", mutate: func(cfg *StructuredConfig) { cfg.Unfollow.Delay = 0 }},
		{name: "empty dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-api-address", "http://localhost:9999",
		"-token", "ghp_flag",
		"-api-version", "2023-01-01",
		"-request-timeout", "5s",
		"-delay", "250ms",
		"-max-retries", "4",
		"-page-size", "30",
		"-d", "/tmp/whitelist.db",
		"-log-file", "/tmp/gs.log",
		"-headless",
		"-yes",
		"-whitelist", "alice, bob ,,carol",
		"-c", "/etc/gitstalker.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.GitHub.APIAddress)
	assert.Equal(t, "ghp_flag", cfg.GitHub.Token)
	assert.Equal(t, "2023-01-01", cfg.GitHub.APIVersion)
	assert.Equal(t, 5*time.Second, cfg.GitHub.RequestTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Unfollow.Delay)
	assert.Equal(t, 4, cfg.Unfollow.MaxRetries)
	assert.Equal(t, 30, cfg.Unfollow.PageSize)
	assert.Equal(t, "/tmp/whitelist.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/gs.log", cfg.App.LogFile)
	assert.True(t, cfg.App.Headless)
	assert.True(t, cfg.App.AssumeYes)
	assert.Equal(t, []string{"alice", "bob", "carol"}, cfg.App.Whitelist)
	assert.Equal(t, "/etc/gitstalker.json", cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.GitHub.APIAddress)
	assert.Nil(t, cfg.App.Whitelist)
	assert.False(t, cfg.App.Headless)
	assert.Zero(t, cfg.Unfollow.Delay)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := parseFlags([]string{"-definitely-unknown"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_BadDuration(t *testing.T) {
	_, err := parseFlags([]string{"-delay", "later"})
	require.Error(t, err)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "blank", in: "   ", want: nil},
		{name: "single", in: "alice", want: []string{"alice"}},
		{name: "spaces and gaps", in: " a ,, b ", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.in))
		})
	}
}

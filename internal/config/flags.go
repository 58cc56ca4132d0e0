// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// parseFlags parses command-line flags into a partial config.
//
// Flags:
//
//	-api-address GitHub REST API base URL
//	-token personal access token
//	-api-version X-GitHub-Api-Version header value
//	-request-timeout request timeout (e.g. "15s")
//	-delay pause between candidates (e.g. "1s")
//	-max-retries attempts per login
//	-page-size listing page size (capped at 100)
//	-d whitelist database DSN
//	-log-file TUI log file path
//	-headless plain line output instead of the TUI
//	-yes skip confirmation in headless mode
//	-whitelist comma separated logins to keep
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("gitstalker", flag.ContinueOnError)

	var (
		apiAddress, token, apiVersion string
		requestTimeout, delay         time.Duration
		maxRetries, pageSize          int
		dsn, logFile, whitelist       string
		headless, assumeYes           bool
		jsonConfigPath                string
	)

	fs.StringVar(&apiAddress, "api-address", "", "GitHub REST API base URL")
	fs.StringVar(&token, "token", "", "GitHub personal access token")
	fs.StringVar(&apiVersion, "api-version", "", "X-GitHub-Api-Version header value")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&delay, "delay", 0, "Pause between unfollows (e.g., 1s)")
	fs.IntVar(&maxRetries, "max-retries", 0, "Attempts per login")
	fs.IntVar(&pageSize, "page-size", 0, "Listing page size (max 100)")
	fs.StringVar(&dsn, "d", "", "Whitelist database DSN")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.BoolVar(&headless, "headless", false, "Run without the terminal UI")
	fs.BoolVar(&assumeYes, "yes", false, "Do not ask for confirmation in headless mode")
	fs.StringVar(&whitelist, "whitelist", "", "Comma separated logins never to unfollow")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile:   logFile,
			Headless:  headless,
			AssumeYes: assumeYes,
			Whitelist: splitList(whitelist),
		},
		GitHub: GitHub{
			APIAddress:     apiAddress,
			Token:          token,
			APIVersion:     apiVersion,
			RequestTimeout: requestTimeout,
		},
		Unfollow: Unfollow{
			Delay:      delay,
			MaxRetries: maxRetries,
			PageSize:   pageSize,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

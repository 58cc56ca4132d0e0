// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		LogFile   string   `json:"log_file"`
		Headless  bool     `json:"headless"`
		AssumeYes bool     `json:"assume_yes"`
		Whitelist []string `json:"whitelist"`
	} `json:"app,omitempty"`

	GitHub struct {
		APIAddress     string   `json:"api_address"`
		Token          string   `json:"token"`
		APIVersion     string   `json:"api_version"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"github,omitempty"`

	Unfollow struct {
		Delay      Duration `json:"delay"`
		MaxRetries int      `json:"max_retries"`
		PageSize   int      `json:"page_size"`
	} `json:"unfollow,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile:   jsonCfg.App.LogFile,
			Headless:  jsonCfg.App.Headless,
			AssumeYes: jsonCfg.App.AssumeYes,
			Whitelist: jsonCfg.App.Whitelist,
		},
		GitHub: GitHub{
			APIAddress:     jsonCfg.GitHub.APIAddress,
			Token:          jsonCfg.GitHub.Token,
			APIVersion:     jsonCfg.GitHub.APIVersion,
			RequestTimeout: time.Duration(jsonCfg.GitHub.RequestTimeout),
		},
		Unfollow: Unfollow{
			Delay:      time.Duration(jsonCfg.Unfollow.Delay),
			MaxRetries: jsonCfg.Unfollow.MaxRetries,
			PageSize:   jsonCfg.Unfollow.PageSize,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" and from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

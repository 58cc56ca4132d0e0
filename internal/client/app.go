// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ashd19/gitStalker/internal/config"
	"github.com/ashd19/gitStalker/internal/logger"
	"github.com/ashd19/gitStalker/internal/service"
	"github.com/ashd19/gitStalker/internal/tui"
)

type App struct {
	cfg      *config.StructuredConfig
	services *service.Services
	wizard   Wizard
	logger   *logger.Logger
}

// NewApp wires the runtime. wizard may be nil in headless mode.
func NewApp(cfg *config.StructuredConfig, services *service.Services, wizard Wizard, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("client: config is nil")
	}
	if services == nil {
		return nil, errors.New("client: services are nil")
	}
	if wizard == nil && !cfg.App.Headless {
		return nil, errors.New("client: wizard is required outside headless mode")
	}

	return &App{cfg: cfg, services: services, wizard: wizard, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.cfg.App.Headless {
		h := newHeadless(a.cfg, a.services, os.Stdin, os.Stdout, a.logger)
		return h.Run(ctx)
	}

	err := a.wizard.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}
	return nil
}

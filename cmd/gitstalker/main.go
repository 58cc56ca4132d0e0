package main

import (
	"context"
	"fmt"

	"github.com/ashd19/gitStalker/internal/adapter"
	"github.com/ashd19/gitStalker/internal/client"
	"github.com/ashd19/gitStalker/internal/config"
	"github.com/ashd19/gitStalker/internal/logger"
	"github.com/ashd19/gitStalker/internal/service"
	"github.com/ashd19/gitStalker/internal/store"
	"github.com/ashd19/gitStalker/internal/tui"
	"github.com/ashd19/gitStalker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	ctx := context.Background()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("gitstalker").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("gitstalker", cfg.App.LogFile)
	if cfg.App.Headless {
		log = logger.NewLogger("gitstalker")
	}

	githubAdapter, err := adapter.NewHTTPGitHubAdapter(cfg.GitHub, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create github adapter")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create whitelist storage")
	}
	defer storages.Close()

	services := service.NewServices(githubAdapter, storages, cfg.Unfollow, log)

	var wizard client.Wizard
	if !cfg.App.Headless {
		ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), cfg.GitHub.Token, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating ui")
		}
		wizard = ui
	}

	app, err := client.NewApp(cfg, services, wizard, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		// Fatal exits without running deferred calls.
		_ = storages.Close()
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

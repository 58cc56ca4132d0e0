package service

import (
	"github.com/ashd19/gitStalker/internal/adapter"
	"github.com/ashd19/gitStalker/internal/config"
	"github.com/ashd19/gitStalker/internal/logger"
	"github.com/ashd19/gitStalker/internal/store"
)

type Services struct {
	Session    SessionService
	Reconciler ReconcilerService
	Unfollow   UnfollowService
	Whitelist  WhitelistService
	Job        UnfollowJob
}

func NewServices(githubAdapter adapter.GitHubAdapter, storages *store.Storages, cfg config.Unfollow, logger *logger.Logger) *Services {
	sessionSvc := NewSessionService(githubAdapter, logger)
	unfollowSvc := NewUnfollowService(githubAdapter, cfg, logger)

	return &Services{
		Session:    sessionSvc,
		Reconciler: NewReconcilerService(githubAdapter, cfg.PageSize, logger),
		Unfollow:   unfollowSvc,
		Whitelist:  NewWhitelistService(storages, logger),
		Job:        NewUnfollowJob(sessionSvc, unfollowSvc, cfg.Delay, logger),
	}
}

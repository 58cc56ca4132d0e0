package tui

import (
	"context"
	"errors"

	"github.com/ashd19/gitStalker/internal/logger"
	"github.com/ashd19/gitStalker/internal/service"
	"github.com/ashd19/gitStalker/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	token     string
	logger    *logger.Logger
}

// New builds the wizard. token prefills the token page when not empty.
func New(services *service.Services, buildInfo models.AppBuildInfo, token string, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}
	return &TUI{services: services, buildInfo: buildInfo, token: token, logger: logger}, nil
}

func (t *TUI) rootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageToken:     NewTokenModel(ctx, t.services.Session, t.token),
		pageWhitelist: NewWhitelistModel(ctx, t.services.Whitelist),
		pageReconcile: NewReconcileModel(ctx, t.services.Reconciler),
		pageConfirm:   NewConfirmModel(ctx, t.services.Job),
		pageProcess:   NewProcessModel(t.services.Job),
		pageResults:   NewResultsModel(),
	}
	return NewRootModel(pages, pageToken, t.buildInfo)
}

// Run blocks until the user leaves the wizard. A run still in progress is
// stopped before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	defer t.services.Job.Stop()

	finalModel, runErr := tea.NewProgram(t.rootModel(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit the wizard")
		return ErrUserQuit
	}
	return nil
}

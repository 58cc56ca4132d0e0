package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/ashd19/gitStalker/internal/service"
	"github.com/ashd19/gitStalker/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel lists the candidates and starts the run on y.
type ConfirmModel struct {
	ctx context.Context
	job service.UnfollowJob

	reconciliation models.Reconciliation
	whitelist      models.Whitelist
	logins         []string
	selected       int
	errMsg         string
}

func NewConfirmModel(ctx context.Context, job service.UnfollowJob) *ConfirmModel {
	return &ConfirmModel{ctx: ctx, job: job}
}

func (m *ConfirmModel) Init() tea.Cmd { return nil }

func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case candidatesReadyMsg:
		m.reconciliation = msg.reconciliation
		m.whitelist = msg.whitelist
		m.logins = models.Logins(msg.reconciliation.NotFollowingBack)
		m.selected = 0
		m.errMsg = ""
		return m, nil

	case runStartedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(pageProcess, msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, keys.down):
			if m.selected < len(m.logins)-1 {
				m.selected++
			}
		case key.Matches(msg, keys.yes):
			if len(m.logins) == 0 {
				return m, nil
			}
			return m, m.cmdStart()
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.no):
			return m, navigate(pageWhitelist, sessionReadyMsg{identity: m.reconciliation.Identity})
		}
	}

	return m, nil
}

func (m *ConfirmModel) cmdStart() tea.Cmd {
	candidates := m.reconciliation.NotFollowingBack
	whitelist := m.whitelist
	return func() tea.Msg {
		events, err := m.job.Start(m.ctx, candidates, whitelist)
		return runStartedMsg{events: events, total: len(candidates), err: err}
	}
}

func (m *ConfirmModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Подписчики: %d\n", len(m.reconciliation.Followers)))
	b.WriteString(fmt.Sprintf("Подписки:   %d\n", len(m.reconciliation.Following)))
	b.WriteString(fmt.Sprintf("Не подписаны в ответ: %d\n\n", len(m.logins)))

	if len(m.logins) == 0 {
		b.WriteString(successStyle.Render("Все, на кого вы подписаны, подписаны на вас."))
		return renderPage("GITSTALKER / ПОДТВЕРЖДЕНИЕ", b.String(), "esc: назад")
	}

	b.WriteString(renderLoginList(m.logins, m.selected))
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	}

	prompt := confirmModel{message: fmt.Sprintf("Отписаться от %d пользователей?", len(m.logins))}
	b.WriteString("\n\n")
	b.WriteString(prompt.View())

	return renderPage("GITSTALKER / ПОДТВЕРЖДЕНИЕ", b.String(), "↑/↓: прокрутка  y: отписаться  esc: назад")
}

package tui

import (
	"context"
	"strings"

	"github.com/ashd19/gitStalker/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ReconcileModel fetches followers and following and computes candidates.
type ReconcileModel struct {
	ctx        context.Context
	reconciler service.ReconcilerService

	request reconcileRequestMsg
	spinner spinner.Model
	running bool
	err     *errorOverlayModel
}

func NewReconcileModel(ctx context.Context, reconciler service.ReconcilerService) *ReconcileModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &ReconcileModel{
		ctx:        ctx,
		reconciler: reconciler,
		spinner:    s,
	}
}

func (m *ReconcileModel) Init() tea.Cmd { return nil }

func (m *ReconcileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reconcileRequestMsg:
		m.request = msg
		return m, m.start()

	case reconciledMsg:
		m.running = false
		if msg.err != nil {
			m.err = &errorOverlayModel{
				message: humanizeError(msg.err),
				hotKeys: "r повторить    esc назад",
			}
			return m, nil
		}
		return m, navigate(pageConfirm, candidatesReadyMsg{
			reconciliation: msg.reconciliation,
			whitelist:      m.request.whitelist,
		})

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.err == nil {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.retry):
			return m, m.start()
		case key.Matches(msg, keys.esc):
			m.err = nil
			return m, navigate(pageWhitelist, sessionReadyMsg{identity: m.request.identity})
		}
	}

	return m, nil
}

func (m *ReconcileModel) start() tea.Cmd {
	m.running = true
	m.err = nil
	whitelist := m.request.whitelist
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		rec, err := m.reconciler.ComputeCandidates(m.ctx, whitelist)
		return reconciledMsg{reconciliation: rec, err: err}
	})
}

func (m *ReconcileModel) View() string {
	if m.err != nil {
		return renderPage("GITSTALKER / СВЕРКА", m.err.View(), "")
	}

	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(" Загрузка подписчиков и подписок...")
	if m.request.whitelist.Len() > 0 {
		b.WriteString("\n\nВ белом списке: ")
		b.WriteString(strings.Join(m.request.whitelist.Logins(), ", "))
	}

	return renderPage("GITSTALKER / СВЕРКА", b.String(), "")
}

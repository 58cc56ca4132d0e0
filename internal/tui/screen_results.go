package tui

import (
	"fmt"
	"strings"

	"github.com/ashd19/gitStalker/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var writeClipboard = clipboard.WriteAll

// ResultsModel shows the outcome of a finished run.
type ResultsModel struct {
	outcome models.OutcomeRecord
	status  string
}

func NewResultsModel() *ResultsModel { return &ResultsModel{} }

func (m *ResultsModel) Init() tea.Cmd { return nil }

func (m *ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeMsg:
		m.outcome = msg.outcome
		m.status = ""
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render("Ошибка: " + msg.err.Error())
			return m, nil
		}
		m.status = successStyle.Render(fmt.Sprintf("Скопировано: %d", msg.count))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.copy):
			failed := m.outcome.FailedLogins()
			if len(failed) == 0 {
				return m, nil
			}
			return m, cmdCopy(failed)
		case key.Matches(msg, keys.restart):
			return m, navigate(pageToken, restartMsg{})
		case key.Matches(msg, keys.quit):
			return m, func() tea.Msg { return quitMsg{} }
		}
	}

	return m, nil
}

func cmdCopy(logins []string) tea.Cmd {
	return func() tea.Msg {
		err := writeClipboard(strings.Join(logins, "\n"))
		return copiedMsg{count: len(logins), err: err}
	}
}

func (m *ResultsModel) View() string {
	var b strings.Builder

	switch {
	case m.outcome.Cancelled:
		b.WriteString(errorStyle.Render("Остановлено"))
	case m.outcome.Success:
		b.WriteString(successStyle.Render("Готово"))
	default:
		b.WriteString(errorStyle.Render("Завершено с ошибками"))
	}
	b.WriteString("\n")
	b.WriteString(m.outcome.Message)
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Отписано (%d):\n", len(m.outcome.Unfollowed)))
	b.WriteString(renderLoginList(m.outcome.Unfollowed, -1))

	hotKeys := "r: начать заново  q: выход"
	if len(m.outcome.Failed) > 0 {
		b.WriteString(fmt.Sprintf("\n\nНе удалось (%d):\n", len(m.outcome.Failed)))
		for i, f := range m.outcome.Failed {
			if i == listWindow {
				b.WriteString(fmt.Sprintf("  ... и ещё %d\n", len(m.outcome.Failed)-listWindow))
				break
			}
			b.WriteString(fmt.Sprintf("  %s: %s\n", fitText(f.Login, 40), f.Reason))
		}
		hotKeys = "c: копировать неудачные  " + hotKeys
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage("GITSTALKER / РЕЗУЛЬТАТ", strings.TrimRight(b.String(), "\n"), hotKeys)
}

package tui

import (
	"context"
	"strings"

	"github.com/ashd19/gitStalker/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TokenModel asks for a personal access token and validates it.
type TokenModel struct {
	ctx     context.Context
	session service.SessionService

	input      textinput.Model
	spinner    spinner.Model
	validating bool
	errMsg     string
}

// NewTokenModel prefills the input with token when one is configured.
func NewTokenModel(ctx context.Context, session service.SessionService, token string) *TokenModel {
	in := textinput.New()
	in.Placeholder = "ghp_..."
	in.Prompt = "Токен: "
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	in.CharLimit = 255
	in.SetValue(token)
	in.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &TokenModel{
		ctx:     ctx,
		session: session,
		input:   in,
		spinner: s,
	}
}

func (m *TokenModel) Init() tea.Cmd { return textinput.Blink }

func (m *TokenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case restartMsg:
		m.validating = false
		m.errMsg = ""
		m.input.Focus()
		return m, nil

	case tokenValidatedMsg:
		m.validating = false
		if !msg.ok {
			m.errMsg = "Токен недействителен или GitHub недоступен"
			return m, nil
		}
		m.errMsg = ""
		return m, navigate(pageWhitelist, sessionReadyMsg{identity: msg.identity})

	case spinner.TickMsg:
		if !m.validating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.validating {
			return m, nil
		}
		if key.Matches(msg, keys.enter) {
			token := strings.TrimSpace(m.input.Value())
			if token == "" {
				m.errMsg = "Введите токен"
				return m, nil
			}
			m.validating = true
			m.errMsg = ""
			return m, tea.Batch(m.spinner.Tick, m.cmdValidate(token))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *TokenModel) cmdValidate(token string) tea.Cmd {
	return func() tea.Msg {
		identity, ok := m.session.Validate(m.ctx, token)
		return tokenValidatedMsg{identity: identity, ok: ok}
	}
}

func (m *TokenModel) View() string {
	var b strings.Builder
	b.WriteString("Персональный токен GitHub (scope user:follow)\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.validating {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Проверка токена...")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	}

	return renderPage("GITSTALKER / ТОКЕН", b.String(), "enter: проверить  f1: о программе")
}

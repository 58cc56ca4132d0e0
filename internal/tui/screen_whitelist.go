package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/ashd19/gitStalker/internal/service"
	"github.com/ashd19/gitStalker/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// WhitelistModel edits the persisted whitelist of the validated account.
// The input has focus by default; up/down move the focus into the list,
// where d removes the selected login.
type WhitelistModel struct {
	ctx       context.Context
	whitelist service.WhitelistService

	identity models.Identity
	current  models.Whitelist

	input     textinput.Model
	selected  int
	focusList bool
	loading   bool
	errMsg    string
}

func NewWhitelistModel(ctx context.Context, whitelist service.WhitelistService) *WhitelistModel {
	in := textinput.New()
	in.Placeholder = "login"
	in.Prompt = "Добавить: "
	in.CharLimit = 39
	in.Focus()

	return &WhitelistModel{
		ctx:       ctx,
		whitelist: whitelist,
		input:     in,
	}
}

func (m *WhitelistModel) Init() tea.Cmd { return textinput.Blink }

func (m *WhitelistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		m.identity = msg.identity
		m.current = models.Whitelist{}
		m.selected = 0
		m.focusInput()
		m.input.SetValue("")
		m.loading = true
		m.errMsg = ""
		return m, m.cmdLoad()

	case whitelistLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.current = msg.whitelist
		if m.selected >= m.current.Len() {
			m.selected = max(m.current.Len()-1, 0)
		}
		if m.current.Len() == 0 {
			m.focusInput()
		}
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *WhitelistModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		return m, navigate(pageReconcile, reconcileRequestMsg{identity: m.identity, whitelist: m.current})

	case m.focusList && key.Matches(msg, keys.up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case m.focusList && key.Matches(msg, keys.down):
		if m.selected < m.current.Len()-1 {
			m.selected++
		}
		return m, nil

	case !m.focusList && (msg.Type == tea.KeyUp || msg.Type == tea.KeyDown):
		if m.current.Len() > 0 {
			m.focusList = true
			m.input.Blur()
		}
		return m, nil

	case m.focusList && key.Matches(msg, keys.delete):
		logins := m.current.Logins()
		if m.selected >= len(logins) {
			return m, nil
		}
		m.loading = true
		return m, m.cmdRemove(logins[m.selected])

	case m.focusList && key.Matches(msg, keys.esc):
		m.focusInput()
		return m, nil

	case key.Matches(msg, keys.esc):
		return m, navigate(pageToken, restartMsg{})

	case !m.focusList && key.Matches(msg, keys.enter):
		login := strings.TrimSpace(m.input.Value())
		if login == "" {
			return m, nil
		}
		m.input.SetValue("")
		m.loading = true
		return m, m.cmdAdd(login)
	}

	if m.focusList {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *WhitelistModel) focusInput() {
	m.focusList = false
	m.input.Focus()
}

func (m *WhitelistModel) cmdLoad() tea.Cmd {
	owner := m.identity.Login
	return func() tea.Msg {
		wl, err := m.whitelist.Load(m.ctx, owner)
		return whitelistLoadedMsg{whitelist: wl, err: err}
	}
}

func (m *WhitelistModel) cmdAdd(login string) tea.Cmd {
	owner := m.identity.Login
	return func() tea.Msg {
		wl, err := m.whitelist.Add(m.ctx, owner, login)
		return whitelistLoadedMsg{whitelist: wl, err: err}
	}
}

func (m *WhitelistModel) cmdRemove(login string) tea.Cmd {
	owner := m.identity.Login
	return func() tea.Msg {
		wl, err := m.whitelist.Remove(m.ctx, owner, login)
		return whitelistLoadedMsg{whitelist: wl, err: err}
	}
}

func (m *WhitelistModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Аккаунт: %s\n", m.identity.Login))
	b.WriteString("Эти пользователи никогда не будут отписаны.\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Белый список (%d):\n", m.current.Len()))

	selected := -1
	if m.focusList {
		selected = m.selected
	}
	b.WriteString(renderLoginList(m.current.Logins(), selected))

	if m.loading {
		b.WriteString("\n\nСохранение...")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	}

	hotKeys := "enter: добавить  ↑/↓: к списку  tab: продолжить  esc: назад"
	if m.focusList {
		hotKeys = "↑/↓: выбор  d: удалить  esc: к вводу  tab: продолжить"
	}
	return renderPage("GITSTALKER / БЕЛЫЙ СПИСОК", b.String(), hotKeys)
}

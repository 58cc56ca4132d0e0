package tui

import (
	"fmt"
	"strings"

	"github.com/ashd19/gitStalker/internal/service"
	"github.com/ashd19/gitStalker/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ProcessModel follows the event stream of a running unfollow job.
type ProcessModel struct {
	job service.UnfollowJob

	events   <-chan models.RunEvent
	bar      progress.Model
	last     models.ProgressEvent
	total    int
	stopping bool
}

func NewProcessModel(job service.UnfollowJob) *ProcessModel {
	return &ProcessModel{
		job: job,
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m *ProcessModel) Init() tea.Cmd { return nil }

func (m *ProcessModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runStartedMsg:
		m.events = msg.events
		m.total = msg.total
		m.last = models.ProgressEvent{Total: msg.total}
		m.stopping = false
		return m, waitForEvent(m.events)

	case runEventMsg:
		if !msg.ok {
			// Closed without an outcome: nothing more to show.
			return m, nil
		}
		if msg.event.Outcome != nil {
			return m, navigate(pageResults, outcomeMsg{outcome: *msg.event.Outcome})
		}
		if msg.event.Progress != nil {
			m.last = *msg.event.Progress
		}
		return m, waitForEvent(m.events)

	case runStoppedMsg:
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) && !m.stopping {
			m.stopping = true
			return m, m.cmdStop()
		}
	}

	return m, nil
}

// waitForEvent reads exactly one event per command.
func waitForEvent(events <-chan models.RunEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		return runEventMsg{event: ev, ok: ok}
	}
}

func (m *ProcessModel) cmdStop() tea.Cmd {
	return func() tea.Msg {
		m.job.Stop()
		return runStoppedMsg{}
	}
}

func (m *ProcessModel) percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.last.Current) / float64(m.total)
}

func (m *ProcessModel) View() string {
	var b strings.Builder
	b.WriteString(m.bar.ViewAs(m.percent()))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%d / %d", m.last.Current, m.total))
	if m.last.Login != "" {
		b.WriteString("  ")
		b.WriteString(selectedStyle.Render(m.last.Login))
	}
	if m.stopping {
		b.WriteString("\n\nОстановка...")
	}

	return renderPage("GITSTALKER / ОТПИСКА", b.String(), "esc: остановить")
}

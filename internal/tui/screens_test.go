package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/ashd19/gitStalker/internal/service"
	"github.com/ashd19/gitStalker/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findMsg выполняет cmd (включая BatchMsg) и возвращает первое сообщение типа T.
func findMsg[T any](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	var zero T
	require.NotNil(t, cmd)

	msg := cmd()
	if v, ok := msg.(T); ok {
		return v
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			if v, ok := c().(T); ok {
				return v
			}
		}
	}
	t.Fatalf("message of type %T not produced", zero)
	return zero
}

func TestTokenModel_EmptyTokenShowsError(t *testing.T) {
	session := &stubSession{}
	m := NewTokenModel(context.Background(), session, "")

	_, cmd := m.Update(keyType(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Empty(t, session.tokens)
	assert.Contains(t, m.View(), "Введите токен")
}

func TestTokenModel_ValidTokenNavigatesToWhitelist(t *testing.T) {
	session := &stubSession{identity: models.Identity{Login: "octocat"}, ok: true}
	m := NewTokenModel(context.Background(), session, "  ghp_secret ")

	_, cmd := m.Update(keyType(tea.KeyEnter))
	validated := findMsg[tokenValidatedMsg](t, cmd)
	assert.Equal(t, []string{"ghp_secret"}, session.tokens)

	_, cmd = m.Update(validated)
	nav, ok := execNavigate(cmd)
	require.True(t, ok)
	assert.Equal(t, pageWhitelist, nav.Page)
	assert.Equal(t, sessionReadyMsg{identity: models.Identity{Login: "octocat"}}, nav.Payload)
}

func TestTokenModel_InvalidToken(t *testing.T) {
	m := NewTokenModel(context.Background(), &stubSession{}, "bad")

	_, cmd := m.Update(tokenValidatedMsg{ok: false})

	assert.Nil(t, cmd)
	assert.False(t, m.validating)
	assert.Contains(t, m.View(), "Токен недействителен")
}

func TestTokenModel_ViewMasksToken(t *testing.T) {
	m := NewTokenModel(context.Background(), &stubSession{}, "ghp_secret")

	assert.NotContains(t, m.View(), "ghp_secret")
}

func TestWhitelistModel_AddRemoveContinue(t *testing.T) {
	store := newStubWhitelist()
	store.lists["octocat"] = []string{"keep"}
	m := NewWhitelistModel(context.Background(), store)

	_, cmd := m.Update(sessionReadyMsg{identity: models.Identity{Login: "octocat"}})
	_, _ = m.Update(findMsg[whitelistLoadedMsg](t, cmd))
	assert.Equal(t, []string{"keep"}, m.current.Logins())

	// Добавление через ввод и enter.
	m.input.SetValue(" friend ")
	_, cmd = m.Update(keyType(tea.KeyEnter))
	_, _ = m.Update(findMsg[whitelistLoadedMsg](t, cmd))
	assert.Equal(t, []string{"keep", "friend"}, m.current.Logins())
	assert.Empty(t, m.input.Value())

	// Переход в список и удаление выбранного.
	_, _ = m.Update(keyType(tea.KeyDown))
	require.True(t, m.focusList)
	_, _ = m.Update(keyType(tea.KeyDown))
	assert.Equal(t, 1, m.selected)
	_, cmd = m.Update(keyRunes("d"))
	_, _ = m.Update(findMsg[whitelistLoadedMsg](t, cmd))
	assert.Equal(t, []string{"keep"}, m.current.Logins())
	assert.Equal(t, 0, m.selected)

	_, cmd = m.Update(keyType(tea.KeyTab))
	nav, ok := execNavigate(cmd)
	require.True(t, ok)
	assert.Equal(t, pageReconcile, nav.Page)
	req := nav.Payload.(reconcileRequestMsg)
	assert.Equal(t, "octocat", req.identity.Login)
	assert.Equal(t, []string{"keep"}, req.whitelist.Logins())
}

func TestWhitelistModel_TypingDDoesNotRemove(t *testing.T) {
	store := newStubWhitelist()
	store.lists["octocat"] = []string{"keep"}
	m := NewWhitelistModel(context.Background(), store)
	_, cmd := m.Update(sessionReadyMsg{identity: models.Identity{Login: "octocat"}})
	_, _ = m.Update(findMsg[whitelistLoadedMsg](t, cmd))

	_, _ = m.Update(keyRunes("d"))

	assert.Equal(t, "d", m.input.Value())
	assert.Equal(t, []string{"keep"}, store.lists["octocat"])
}

func TestWhitelistModel_LoadError(t *testing.T) {
	store := newStubWhitelist()
	store.failOn = "load"
	m := NewWhitelistModel(context.Background(), store)

	_, cmd := m.Update(sessionReadyMsg{identity: models.Identity{Login: "octocat"}})
	_, _ = m.Update(findMsg[whitelistLoadedMsg](t, cmd))

	assert.Contains(t, m.View(), "db down")
}

func TestReconcileModel_SuccessNavigatesToConfirm(t *testing.T) {
	rec := models.Reconciliation{
		Identity:         models.Identity{Login: "octocat"},
		Following:        ids("a", "b"),
		NotFollowingBack: ids("a"),
	}
	reconciler := &stubReconciler{rec: rec}
	m := NewReconcileModel(context.Background(), reconciler)
	wl := models.NewWhitelist("c")

	_, cmd := m.Update(reconcileRequestMsg{identity: rec.Identity, whitelist: wl})
	done := findMsg[reconciledMsg](t, cmd)
	assert.Equal(t, wl, reconciler.whitelist)

	_, cmd = m.Update(done)
	nav, ok := execNavigate(cmd)
	require.True(t, ok)
	assert.Equal(t, pageConfirm, nav.Page)
	assert.Equal(t, candidatesReadyMsg{reconciliation: rec, whitelist: wl}, nav.Payload)
}

func TestReconcileModel_ErrorThenBack(t *testing.T) {
	m := NewReconcileModel(context.Background(), &stubReconciler{err: errors.New("dial tcp: refused")})

	_, cmd := m.Update(reconcileRequestMsg{identity: models.Identity{Login: "octocat"}})
	_, _ = m.Update(findMsg[reconciledMsg](t, cmd))
	assert.Contains(t, m.View(), "Отсутствует сеть")

	_, cmd = m.Update(keyType(tea.KeyEsc))
	nav, ok := execNavigate(cmd)
	require.True(t, ok)
	assert.Equal(t, pageWhitelist, nav.Page)
}

func TestConfirmModel_StartsJob(t *testing.T) {
	job := &stubJob{events: make(chan models.RunEvent)}
	m := NewConfirmModel(context.Background(), job)
	_, _ = m.Update(candidatesReadyMsg{reconciliation: models.Reconciliation{NotFollowingBack: ids("a", "b")}})
	assert.Contains(t, m.View(), "Отписаться от 2 пользователей?")

	_, cmd := m.Update(keyRunes("y"))
	started := findMsg[runStartedMsg](t, cmd)
	assert.Equal(t, 2, started.total)
	assert.Len(t, job.candidates, 2)

	_, cmd = m.Update(started)
	nav, ok := execNavigate(cmd)
	require.True(t, ok)
	assert.Equal(t, pageProcess, nav.Page)
}

func TestConfirmModel_NoCandidates(t *testing.T) {
	job := &stubJob{}
	m := NewConfirmModel(context.Background(), job)
	_, _ = m.Update(candidatesReadyMsg{})

	_, cmd := m.Update(keyRunes("y"))

	assert.Nil(t, cmd)
	assert.Nil(t, job.candidates)
	assert.Contains(t, m.View(), "подписаны на вас")
}

func TestConfirmModel_StartRejected(t *testing.T) {
	m := NewConfirmModel(context.Background(), &stubJob{})
	_, _ = m.Update(candidatesReadyMsg{reconciliation: models.Reconciliation{NotFollowingBack: ids("a")}})

	_, cmd := m.Update(runStartedMsg{err: service.ErrRunInProgress})

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Отписка уже выполняется")
}

func TestProcessModel_FollowsEventsToResults(t *testing.T) {
	events := make(chan models.RunEvent, 3)
	events <- models.RunEvent{Progress: &models.ProgressEvent{Current: 1, Total: 2, Login: "a"}}
	outcome := models.OutcomeRecord{Success: true, Unfollowed: []string{"a", "b"}, TotalProcessed: 2}
	events <- models.RunEvent{Outcome: &outcome}
	close(events)

	job := &stubJob{}
	m := NewProcessModel(job)

	_, cmd := m.Update(runStartedMsg{events: events, total: 2})
	_, cmd = m.Update(findMsg[runEventMsg](t, cmd))
	assert.Equal(t, 1, m.last.Current)
	assert.InDelta(t, 0.5, m.percent(), 1e-9)
	assert.Contains(t, m.View(), "1 / 2")

	_, cmd = m.Update(findMsg[runEventMsg](t, cmd))
	nav, ok := execNavigate(cmd)
	require.True(t, ok)
	assert.Equal(t, pageResults, nav.Page)
	assert.Equal(t, outcomeMsg{outcome: outcome}, nav.Payload)
}

func TestProcessModel_EscStopsOnce(t *testing.T) {
	job := &stubJob{}
	m := NewProcessModel(job)
	_, _ = m.Update(runStartedMsg{events: make(chan models.RunEvent), total: 1})

	_, cmd := m.Update(keyType(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.IsType(t, runStoppedMsg{}, cmd())
	assert.Equal(t, 1, job.stopped)

	_, cmd = m.Update(keyType(tea.KeyEsc))
	assert.Nil(t, cmd)
}

func TestResultsModel_CopyFailed(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m := NewResultsModel()
	_, _ = m.Update(outcomeMsg{outcome: models.OutcomeRecord{
		Message: "Processed 3 users. Unfollowed: 1, Failed: 2",
		Failed: []models.FailedUnfollow{
			{Login: "x", Reason: "Failed after 3 attempts"},
			{Login: "y", Reason: "Failed after 3 attempts"},
		},
		Unfollowed: []string{"a"},
	}})

	_, cmd := m.Update(keyRunes("c"))
	_, _ = m.Update(findMsg[copiedMsg](t, cmd))

	assert.Equal(t, "x\ny", copied)
	view := m.View()
	assert.Contains(t, view, "Скопировано: 2")
	assert.Contains(t, view, "Processed 3 users. Unfollowed: 1, Failed: 2")
	assert.Contains(t, view, "Завершено с ошибками")
}

func TestResultsModel_CopyWithoutFailures(t *testing.T) {
	m := NewResultsModel()
	_, _ = m.Update(outcomeMsg{outcome: models.OutcomeRecord{Success: true}})

	_, cmd := m.Update(keyRunes("c"))

	assert.Nil(t, cmd)
	assert.NotContains(t, m.View(), "c: копировать")
}

func TestResultsModel_RestartAndQuit(t *testing.T) {
	m := NewResultsModel()

	_, cmd := m.Update(keyRunes("r"))
	nav, ok := execNavigate(cmd)
	require.True(t, ok)
	assert.Equal(t, pageToken, nav.Page)

	_, cmd = m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, quitMsg{}, cmd())
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "run in progress", err: service.ErrRunInProgress, want: "Отписка уже выполняется"},
		{name: "network", err: errors.New("Get: dial tcp 1.2.3.4: i/o timeout"), want: "Отсутствует сеть или GitHub недоступен"},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

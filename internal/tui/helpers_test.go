package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/ashd19/gitStalker/models"
	tea "github.com/charmbracelet/bubbletea"
)

type stubSession struct {
	identity models.Identity
	ok       bool
	tokens   []string
}

func (s *stubSession) Validate(_ context.Context, token string) (models.Identity, bool) {
	s.tokens = append(s.tokens, token)
	return s.identity, s.ok
}

func (s *stubSession) Identity() (models.Identity, bool) { return s.identity, s.ok }

type stubWhitelist struct {
	mu     sync.Mutex
	lists  map[string][]string
	failOn string
}

func newStubWhitelist() *stubWhitelist {
	return &stubWhitelist{lists: map[string][]string{}}
}

func (s *stubWhitelist) Load(_ context.Context, owner string) (models.Whitelist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn == "load" {
		return models.Whitelist{}, errors.New("db down")
	}
	return models.NewWhitelist(s.lists[owner]...), nil
}

func (s *stubWhitelist) Add(_ context.Context, owner, login string) (models.Whitelist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[owner] = append(s.lists[owner], login)
	return models.NewWhitelist(s.lists[owner]...), nil
}

func (s *stubWhitelist) Remove(_ context.Context, owner, login string) (models.Whitelist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.lists[owner][:0]
	for _, l := range s.lists[owner] {
		if l != login {
			kept = append(kept, l)
		}
	}
	s.lists[owner] = kept
	return models.NewWhitelist(kept...), nil
}

func (s *stubWhitelist) Save(_ context.Context, owner string, logins []string) (models.Whitelist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[owner] = logins
	return models.NewWhitelist(logins...), nil
}

type stubReconciler struct {
	rec       models.Reconciliation
	err       error
	whitelist models.Whitelist
}

func (s *stubReconciler) ListFollowers(context.Context) ([]models.Identity, error) {
	return s.rec.Followers, s.err
}

func (s *stubReconciler) ListFollowing(context.Context) ([]models.Identity, error) {
	return s.rec.Following, s.err
}

func (s *stubReconciler) ComputeCandidates(_ context.Context, wl models.Whitelist) (models.Reconciliation, error) {
	s.whitelist = wl
	return s.rec, s.err
}

type stubJob struct {
	events     chan models.RunEvent
	err        error
	candidates []models.Identity
	stopped    int
}

func (s *stubJob) Start(_ context.Context, candidates []models.Identity, _ models.Whitelist) (<-chan models.RunEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.candidates = candidates
	return s.events, nil
}

func (s *stubJob) Stop()         { s.stopped++ }
func (s *stubJob) Running() bool { return false }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// execNavigate runs cmd and returns the NavigateTo it produced.
func execNavigate(cmd tea.Cmd) (NavigateTo, bool) {
	if cmd == nil {
		return NavigateTo{}, false
	}
	nav, ok := cmd().(NavigateTo)
	return nav, ok
}

func ids(logins ...string) []models.Identity {
	out := make([]models.Identity, 0, len(logins))
	for i, l := range logins {
		out = append(out, models.Identity{Login: l, ID: int64(i + 1)})
	}
	return out
}

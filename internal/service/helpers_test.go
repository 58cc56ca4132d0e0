package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/ashd19/gitStalker/models"
)

// fakeSleeper запоминает запрошенные паузы и возвращается сразу.
// onSleep вызывается с порядковым номером паузы (с 1).
type fakeSleeper struct {
	mu      sync.Mutex
	calls   []time.Duration
	onSleep func(n int)
}

func (f *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	f.mu.Lock()
	f.calls = append(f.calls, d)
	n := len(f.calls)
	f.mu.Unlock()

	if f.onSleep != nil {
		f.onSleep(n)
	}
	return ctx.Err()
}

func (f *fakeSleeper) durations() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]time.Duration, len(f.calls))
	copy(out, f.calls)
	return out
}

// identities строит []models.Identity из логинов
func identities(logins ...string) []models.Identity {
	out := make([]models.Identity, 0, len(logins))
	for i, login := range logins {
		out = append(out, models.Identity{Login: login, ID: int64(i + 1)})
	}
	return out
}

// numbered строит n пользователей с логинами prefix0..prefixN-1
func numbered(prefix string, n int) []models.Identity {
	out := make([]models.Identity, 0, n)
	for i := range n {
		out = append(out, models.Identity{Login: prefix + strconv.Itoa(i), ID: int64(i)})
	}
	return out
}

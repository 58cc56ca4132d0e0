package service

import (
	"context"
	"strings"
	"sync"

	"github.com/ashd19/gitStalker/internal/adapter"
	"github.com/ashd19/gitStalker/internal/logger"
	"github.com/ashd19/gitStalker/models"
)

type sessionService struct {
	adapter adapter.GitHubAdapter
	logger  *logger.Logger

	mu       sync.RWMutex
	identity models.Identity
	valid    bool
}

// NewSessionService creates a SessionService over githubAdapter. The session
// starts out unvalidated.
func NewSessionService(githubAdapter adapter.GitHubAdapter, logger *logger.Logger) SessionService {
	return &sessionService{adapter: githubAdapter, logger: logger}
}

// Validate implements SessionService.
func (s *sessionService) Validate(ctx context.Context, token string) (models.Identity, bool) {
	log := logger.FromContextOr(ctx, s.logger)

	token = strings.TrimSpace(token)
	if token == "" {
		s.invalidate()
		log.Debug().Str("func", "*sessionService.Validate").Msg("empty token rejected")
		return models.Identity{}, false
	}

	s.adapter.SetToken(token)
	identity, err := s.adapter.CurrentUser(ctx)
	if err != nil {
		s.adapter.SetToken("")
		s.invalidate()

		event := log.Warn().Err(err).Str("func", "*sessionService.Validate")
		if te, ok := adapter.AsTransportError(err); ok {
			event = event.Int("status", te.Status)
		}
		event.Msg("token validation failed")
		return models.Identity{}, false
	}

	s.mu.Lock()
	s.identity = identity
	s.valid = true
	s.mu.Unlock()

	log.Info().Str("login", identity.Login).Int64("id", identity.ID).Msg("session validated")
	return identity, true
}

// Identity implements SessionService.
func (s *sessionService) Identity() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.valid
}

func (s *sessionService) invalidate() {
	s.mu.Lock()
	s.identity = models.Identity{}
	s.valid = false
	s.mu.Unlock()
}

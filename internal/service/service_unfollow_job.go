package service

import (
	"context"
	"sync"
	"time"

	"github.com/ashd19/gitStalker/internal/logger"
	"github.com/ashd19/gitStalker/internal/utils"
	"github.com/ashd19/gitStalker/models"
)

type unfollowJob struct {
	session  SessionService
	unfollow UnfollowService
	delay    time.Duration
	logger   *logger.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewUnfollowJob creates an idle UnfollowJob running unfollow with the given
// inter-item delay.
func NewUnfollowJob(session SessionService, unfollow UnfollowService, delay time.Duration, logger *logger.Logger) UnfollowJob {
	return &unfollowJob{
		session:  session,
		unfollow: unfollow,
		delay:    delay,
		logger:   logger,
	}
}

// Start implements UnfollowJob. The event channel is buffered for every
// event of the run, so a slow reader never stalls the executor. The run
// goroutine exits when the executor returns, ctx is cancelled or Stop is
// called.
func (j *unfollowJob) Start(ctx context.Context, candidates []models.Identity, whitelist models.Whitelist) (<-chan models.RunEvent, error) {
	owner, ok := j.session.Identity()
	if !ok {
		return nil, ErrSessionNotValidated
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.running {
		return nil, ErrRunInProgress
	}

	runLog := j.logger.WithRunID(utils.NewRunID())
	jobCtx, cancel := context.WithCancel(runLog.WithContext(ctx))
	j.cancel = cancel
	j.running = true

	events := make(chan models.RunEvent, len(candidates)+1)

	runLog.Info().Str("owner", owner.Login).Int("candidates", len(candidates)).Msg("unfollow job started")

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		defer close(events)
		defer cancel()

		outcome := j.unfollow.Run(jobCtx, candidates, whitelist, j.delay, func(ev models.ProgressEvent) {
			events <- models.RunEvent{Progress: &ev}
		})

		j.mu.Lock()
		j.running = false
		j.cancel = nil
		j.mu.Unlock()

		events <- models.RunEvent{Outcome: &outcome}
	}()

	return events, nil
}

// Stop implements UnfollowJob.
func (j *unfollowJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Running implements UnfollowJob.
func (j *unfollowJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

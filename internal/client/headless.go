// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ashd19/gitStalker/internal/config"
	"github.com/ashd19/gitStalker/internal/logger"
	"github.com/ashd19/gitStalker/internal/service"
	"github.com/ashd19/gitStalker/models"
	"golang.org/x/term"
)

var (
	ErrInvalidToken = errors.New("token is invalid or GitHub is unreachable")
	ErrAborted      = errors.New("aborted by user")
)

var (
	readPassword = func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) }
	isTerminal   = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// headless runs the whole flow with plain line output.
type headless struct {
	cfg      *config.StructuredConfig
	services *service.Services
	in       *bufio.Reader
	out      io.Writer
	logger   *logger.Logger
}

func newHeadless(cfg *config.StructuredConfig, services *service.Services, in io.Reader, out io.Writer, logger *logger.Logger) *headless {
	return &headless{
		cfg:      cfg,
		services: services,
		in:       bufio.NewReader(in),
		out:      out,
		logger:   logger,
	}
}

func (h *headless) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	token, err := h.token()
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}

	identity, ok := h.services.Session.Validate(ctx, token)
	if !ok {
		return ErrInvalidToken
	}
	h.printf("Аккаунт: %s\n", identity.Login)

	whitelist, err := h.whitelist(ctx, identity.Login)
	if err != nil {
		return err
	}
	if whitelist.Len() > 0 {
		h.printf("Белый список (%d): %s\n", whitelist.Len(), strings.Join(whitelist.Logins(), ", "))
	}

	rec, err := h.services.Reconciler.ComputeCandidates(ctx, whitelist)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}
	h.printf("Подписчики: %d, подписки: %d, не подписаны в ответ: %d\n",
		len(rec.Followers), len(rec.Following), len(rec.NotFollowingBack))

	if len(rec.NotFollowingBack) == 0 {
		h.printf("Все, на кого вы подписаны, подписаны на вас.\n")
		return nil
	}
	for _, login := range models.Logins(rec.NotFollowingBack) {
		h.printf("  %s\n", login)
	}

	if !h.cfg.App.AssumeYes {
		confirmed, err := h.confirm(fmt.Sprintf("Отписаться от %d пользователей? [y/N]: ", len(rec.NotFollowingBack)))
		if err != nil {
			return fmt.Errorf("read confirmation: %w", err)
		}
		if !confirmed {
			return ErrAborted
		}
	}

	outcome := h.services.Unfollow.Run(ctx, rec.NotFollowingBack, whitelist, h.cfg.Unfollow.Delay,
		func(ev models.ProgressEvent) {
			h.printf("[%d/%d] %s\n", ev.Current, ev.Total, ev.Login)
		})
	h.printOutcome(outcome)

	return nil
}

// token prefers the configured token, then a hidden prompt on a terminal,
// then the first line of the input.
func (h *headless) token() (string, error) {
	if t := strings.TrimSpace(h.cfg.GitHub.Token); t != "" {
		return t, nil
	}

	h.printf("Токен GitHub: ")
	if isTerminal() {
		b, err := readPassword()
		h.printf("\n")
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := h.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// whitelist saves the configured list when present, otherwise loads the
// stored one.
func (h *headless) whitelist(ctx context.Context, owner string) (models.Whitelist, error) {
	if len(h.cfg.App.Whitelist) > 0 {
		wl, err := h.services.Whitelist.Save(ctx, owner, h.cfg.App.Whitelist)
		if err != nil {
			return models.Whitelist{}, fmt.Errorf("save whitelist: %w", err)
		}
		return wl, nil
	}

	wl, err := h.services.Whitelist.Load(ctx, owner)
	if err != nil {
		return models.Whitelist{}, fmt.Errorf("load whitelist: %w", err)
	}
	return wl, nil
}

func (h *headless) confirm(prompt string) (bool, error) {
	h.printf("%s", prompt)

	line, err := h.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "д", "да":
		return true, nil
	}
	return false, nil
}

func (h *headless) printOutcome(o models.OutcomeRecord) {
	h.printf("\n%s\n", o.Message)
	for _, login := range o.Unfollowed {
		h.printf("  - %s\n", login)
	}
	if len(o.Failed) > 0 {
		h.printf("Не удалось:\n")
		for _, f := range o.Failed {
			h.printf("  ! %s: %s\n", f.Login, f.Reason)
		}
	}
}

func (h *headless) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(h.out, format, args...); err != nil {
		h.logger.Err(err).Msg("write output")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/ashd19/gitStalker/internal/adapter"
	"github.com/ashd19/gitStalker/internal/service"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Токен отклонён GitHub"
	case adapter.IsRateLimit(err):
		return "Превышен лимит запросов GitHub, попробуйте позже"
	case errors.Is(err, service.ErrRunInProgress):
		return "Отписка уже выполняется"
	case errors.Is(err, service.ErrSessionNotValidated):
		return "Сначала введите действительный токен"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или GitHub недоступен"
	}

	return err.Error()
}

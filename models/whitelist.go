// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Whitelist is a set of logins that must never be unfollowed.
// Matching is case-sensitive and exact.
type Whitelist struct {
	ordered []string
	index   map[string]struct{}
}

// NewWhitelist builds a Whitelist from logins. Entries are trimmed, empty
// entries and duplicates are dropped, first-seen order is kept.
func NewWhitelist(logins ...string) Whitelist {
	w := Whitelist{
		ordered: make([]string, 0, len(logins)),
		index:   make(map[string]struct{}, len(logins)),
	}
	for _, login := range logins {
		login = strings.TrimSpace(login)
		if login == "" {
			continue
		}
		if _, ok := w.index[login]; ok {
			continue
		}
		w.index[login] = struct{}{}
		w.ordered = append(w.ordered, login)
	}
	return w
}

// Contains reports whether login is whitelisted. The zero Whitelist contains
// nothing.
func (w Whitelist) Contains(login string) bool {
	_, ok := w.index[login]
	return ok
}

// Len returns the number of distinct whitelisted logins.
func (w Whitelist) Len() int {
	return len(w.ordered)
}

// Logins returns a copy of the whitelisted logins in insertion order.
func (w Whitelist) Logins() []string {
	out := make([]string, len(w.ordered))
	copy(out, w.ordered)
	return out
}

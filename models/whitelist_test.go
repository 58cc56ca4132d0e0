// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWhitelist_TrimsAndDedupes(t *testing.T) {
	w := NewWhitelist(" alice ", "bob", "", "alice", "  ", "carol")

	assert.Equal(t, []string{"alice", "bob", "carol"}, w.Logins())
	assert.Equal(t, 3, w.Len())
}

func TestWhitelist_ContainsIsCaseSensitive(t *testing.T) {
	w := NewWhitelist("Alice")

	assert.True(t, w.Contains("Alice"))
	assert.False(t, w.Contains("alice"))
	assert.False(t, w.Contains("ALICE"))
}

func TestWhitelist_ZeroValue(t *testing.T) {
	var w Whitelist

	assert.False(t, w.Contains("anyone"))
	assert.Equal(t, 0, w.Len())
	assert.Empty(t, w.Logins())
}

func TestWhitelist_LoginsReturnsCopy(t *testing.T) {
	w := NewWhitelist("a", "b")

	logins := w.Logins()
	logins[0] = "mutated"

	assert.True(t, w.Contains("a"))
	assert.Equal(t, []string{"a", "b"}, w.Logins())
}

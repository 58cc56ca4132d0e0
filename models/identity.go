// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is a GitHub account as returned by the users endpoints.
// Values are immutable once fetched.
type Identity struct {
	// Login is the unique account handle (e.g. "octocat").
	Login string `json:"login"`

	// ID is the numeric account identifier assigned by GitHub.
	ID int64 `json:"id"`

	// AvatarURL points to the account avatar image.
	AvatarURL string `json:"avatar_url"`

	// HTMLURL is the public profile page of the account.
	HTMLURL string `json:"html_url"`
}

// Logins returns the logins of ids in the same order.
func Logins(ids []Identity) []string {
	logins := make([]string, 0, len(ids))
	for _, id := range ids {
		logins = append(logins, id.Login)
	}
	return logins
}

// Reconciliation is the result of one reconciliation pass for the
// authenticated user.
type Reconciliation struct {
	// Identity is the authenticated account.
	Identity Identity

	// Followers are the accounts that follow Identity, in server order.
	Followers []Identity

	// Following are the accounts Identity follows, in server order.
	Following []Identity

	// NotFollowingBack is Following minus Followers minus the whitelist,
	// keeping the order of Following.
	NotFollowingBack []Identity
}

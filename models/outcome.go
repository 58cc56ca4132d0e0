// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ProgressEvent is emitted right before an unfollow attempt.
type ProgressEvent struct {
	// Current is the 1-based position of Login in the original candidate
	// list. Whitelisted positions are skipped, not renumbered.
	Current int

	// Total is the length of the candidate list.
	Total int

	// Login is the account about to be unfollowed.
	Login string
}

// ProgressFunc receives progress events synchronously.
type ProgressFunc func(ProgressEvent)

// FailedUnfollow is a login whose retries were exhausted.
type FailedUnfollow struct {
	Login  string `json:"login"`
	Reason string `json:"error"`
}

// OutcomeRecord summarizes one unfollow run.
type OutcomeRecord struct {
	Success        bool             `json:"success"`
	Cancelled      bool             `json:"cancelled"`
	Message        string           `json:"message"`
	Unfollowed     []string         `json:"unfollowed_users"`
	Failed         []FailedUnfollow `json:"failed_users"`
	TotalProcessed int              `json:"total_processed"`
}

// Finish fills Success and Message from the accumulated lists. total is the
// length of the candidate list the run was started with.
func (o *OutcomeRecord) Finish(total int) {
	if o.Cancelled {
		o.Success = false
		o.Message = fmt.Sprintf("Cancelled after %d of %d users. Unfollowed: %d, Failed: %d",
			o.TotalProcessed, total, len(o.Unfollowed), len(o.Failed))
		return
	}

	o.Success = len(o.Failed) == 0
	o.Message = fmt.Sprintf("Processed %d users. Unfollowed: %d, Failed: %d",
		o.TotalProcessed, len(o.Unfollowed), len(o.Failed))
}

// FailedLogins returns the logins of failed entries in order.
func (o OutcomeRecord) FailedLogins() []string {
	logins := make([]string, 0, len(o.Failed))
	for _, f := range o.Failed {
		logins = append(logins, f.Login)
	}
	return logins
}

// RunEvent is one item of an unfollow job event stream. Exactly one of
// Progress and Outcome is set; the Outcome event is always the last one.
type RunEvent struct {
	Progress *ProgressEvent
	Outcome  *OutcomeRecord
}

package tui

import (
	"github.com/ashd19/gitStalker/models"
)

// sessionReadyMsg opens the whitelist page for a validated account.
type sessionReadyMsg struct {
	identity models.Identity
}

type tokenValidatedMsg struct {
	identity models.Identity
	ok       bool
}

type whitelistLoadedMsg struct {
	whitelist models.Whitelist
	err       error
}

// reconcileRequestMsg starts a reconciliation on the reconcile page.
type reconcileRequestMsg struct {
	identity  models.Identity
	whitelist models.Whitelist
}

type reconciledMsg struct {
	reconciliation models.Reconciliation
	err            error
}

// candidatesReadyMsg opens the confirm page.
type candidatesReadyMsg struct {
	reconciliation models.Reconciliation
	whitelist      models.Whitelist
}

// runStartedMsg opens the process page with the event stream of the run.
type runStartedMsg struct {
	events <-chan models.RunEvent
	total  int
	err    error
}

type runEventMsg struct {
	event models.RunEvent
	ok    bool
}

type runStoppedMsg struct{}

// outcomeMsg opens the results page.
type outcomeMsg struct {
	outcome models.OutcomeRecord
}

type copiedMsg struct {
	count int
	err   error
}

// restartMsg returns the wizard to the token page.
type restartMsg struct{}

type quitMsg struct{}

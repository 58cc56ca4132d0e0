package service

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotValidated = errors.New("session is not validated")
	ErrRunInProgress       = errors.New("unfollow run is already in progress")

	ErrEmptyOwner = errors.New("whitelist owner is empty")
	ErrEmptyLogin = errors.New("login is empty")
)

// RetriesExhaustedError is returned by AttemptUnfollow when every attempt
// failed. It unwraps to the error of the last attempt.
type RetriesExhaustedError struct {
	Attempts int
	Err      error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("Failed after %d attempts", e.Attempts)
}

func (e *RetriesExhaustedError) Unwrap() error {
	return e.Err
}

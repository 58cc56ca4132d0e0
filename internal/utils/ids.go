package utils

import "github.com/google/uuid"

// NewRunID returns a time-ordered UUIDv7 string used to tag unfollow runs in
// logs. It falls back to a random UUIDv4 if the v7 generator fails.
func NewRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

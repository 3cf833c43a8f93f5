package session

import "errors"

// Session package errors.
var (
	// ErrMissingSenderCompID is returned when the config has no sender
	// identity for tag 49.
	ErrMissingSenderCompID = errors.New("session: missing SenderCompID")

	// ErrMissingTargetCompID is returned when the config has no
	// counterparty identity for tag 56.
	ErrMissingTargetCompID = errors.New("session: missing TargetCompID")
)

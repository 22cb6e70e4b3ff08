package attendance

import "errors"

// Attendance domain errors
var (
	// Clock event errors
	ErrAlreadyClockedIn   = errors.New("an open session already exists for this employee")
	ErrNoOpenSession      = errors.New("no open session to clock out of")
	ErrInvalidSessionKind = errors.New("session kind must be ON_SITE or REMOTE")

	// General errors
	ErrSessionNotFound  = errors.New("attendance session not found")
	ErrEmployeeNotFound = errors.New("employee not found")
)

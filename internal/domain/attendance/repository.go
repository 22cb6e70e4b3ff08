package attendance

import (
	"context"
	"time"
)

// SessionRepository defines data access for clock sessions. The single-open-
// session invariant is enforced here, against persisted state, so it survives
// process restarts and concurrent devices.
type SessionRepository interface {
	// Create inserts a new open session atomically: it fails with
	// ErrAlreadyClockedIn when any open session exists for the employee,
	// on any day. Two concurrent clock-ins yield exactly one success.
	Create(ctx context.Context, session Session) (Session, error)

	// CloseOpen stamps clock_out on the employee's open session. Returns
	// ErrNoOpenSession when nothing is open.
	CloseOpen(ctx context.Context, employeeID string, clockOutUTC time.Time) (Session, error)

	// GetOpen returns the employee's open session, or ErrNoOpenSession.
	GetOpen(ctx context.Context, employeeID string) (Session, error)

	// CloseByID stamps clock_out on a specific still-open session. Used by
	// the reconciliation sweep; closing an already-closed session is a no-op
	// reported as ErrSessionNotFound so the sweep can skip it.
	CloseByID(ctx context.Context, sessionID string, clockOutUTC time.Time) error

	// ListByEmployeeAndDate returns the day's sessions ordered by clock_in.
	ListByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) ([]Session, error)

	// ListOpenBefore returns open sessions whose day key is strictly before
	// the given day. The boundary keeps the sweep off today's live sessions.
	ListOpenBefore(ctx context.Context, day time.Time) ([]Session, error)
}

// DaySummaryRepository persists derived per-day snapshots for reporting and
// export reads.
type DaySummaryRepository interface {
	Upsert(ctx context.Context, summary DaySummary) error
	Get(ctx context.Context, employeeID string, day time.Time) (*DaySummary, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]DaySummary, error)
}

package attendance

import (
	"context"
	"time"
)

// AttendanceService is the clock event processor plus the per-day derived
// reads exposed to front ends.
type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (SessionResponse, error)
	ClockOut(ctx context.Context) (SessionResponse, error)

	// HoursFor derives the day's worked duration strictly from completed
	// sessions; an open session only marks the result as still accruing.
	HoursFor(ctx context.Context, employeeID string, day time.Time) (time.Duration, bool, error)

	// Recompute re-runs the calculator and resolver for one day after a
	// regularization correction was approved, persists the refreshed
	// summary, and returns it. The only path by which a day's derived
	// output changes after initial resolution.
	Recompute(ctx context.Context, employeeID string, day time.Time) (DayResolution, error)

	// MyDays returns persisted day summaries for the calling employee.
	MyDays(ctx context.Context, filter MyDaysFilter) ([]DayResolutionResponse, error)
}

// Resolver turns one employee-day into its authoritative status code and
// worked hours.
type Resolver interface {
	Resolve(ctx context.Context, employeeID string, day time.Time) (DayResolution, error)
}

// ReconcileService is the scheduled reconciliation surface. Both operations
// are idempotent batch jobs; per-employee failures are logged and skipped so
// one bad record never blocks the rest of the batch.
type ReconcileService interface {
	// CloseAbandonedSessions force-closes open sessions whose day key is
	// strictly before processingDay, at local 23:59:59 of their own day,
	// looking at most daysBack days into the past. Returns the number of
	// sessions closed.
	CloseAbandonedSessions(ctx context.Context, processingDay time.Time, daysBack int) (int, error)

	// MarkAbsentDays resolves and persists summaries for every active
	// employee-day in [from, to] that has no session and no summary yet.
	// Returns the number of summaries written.
	MarkAbsentDays(ctx context.Context, from, to time.Time) (int, error)
}

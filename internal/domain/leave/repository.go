package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// RecordFor returns the leave record for an employee-day, or nil when
	// none exists.
	RecordFor(ctx context.Context, employeeID string, day time.Time) (*LeaveRecord, error)

	// ListByEmployeeAndRange returns leave records inside [from, to].
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRecord, error)
}

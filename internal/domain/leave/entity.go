package leave

import "time"

// Kind is the per-day leave flavor an external approval workflow produced.
type Kind string

const (
	KindLeave   Kind = "LEAVE"
	KindHalfDay Kind = "HALF_DAY"
)

// LeaveRecord is one approved leave day. The core treats it as an immutable
// input; approval and rejection happen in an external workflow.
type LeaveRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Kind       Kind

	CreatedAt time.Time
}

package attendance

import (
	"time"
)

// StatusCode is the single authoritative display code for one employee-day.
type StatusCode string

const (
	StatusPresent   StatusCode = "P"
	StatusAbsent    StatusCode = "A"
	StatusLeave     StatusCode = "L"
	StatusHalfDay   StatusCode = "HD"
	StatusWeeklyOff StatusCode = "WO"
	StatusHoliday   StatusCode = "H"
)

// SessionKind distinguishes on-site from remote clock-ins. Both count equally
// toward presence.
type SessionKind string

const (
	KindOnSite SessionKind = "ON_SITE"
	KindRemote SessionKind = "REMOTE"
)

func (k SessionKind) Valid() bool {
	return k == KindOnSite || k == KindRemote
}

// Session is one clock-in/clock-out pair. Date is the calendar-day key,
// derived from local time at the resolved zone when the session is opened,
// and never recomputed afterwards - a session that runs past local midnight
// stays keyed to its clock-in day.
type Session struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	Kind       SessionKind
	Timezone   string
	ClockIn    time.Time
	ClockOut   *time.Time

	ClockInLatitude  *float64
	ClockInLongitude *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the session has no clock-out yet. Invariant: an
// employee holds at most one open session at any instant, across all days.
func (s Session) IsOpen() bool {
	return s.ClockOut == nil
}

// Duration returns clock_out - clock_in for completed sessions and zero for
// open ones. An abandoned clock-in must never inflate a day's total.
func (s Session) Duration() time.Duration {
	if s.ClockOut == nil {
		return 0
	}
	return s.ClockOut.Sub(s.ClockIn)
}

// DayResolution is the derived output for one employee-day: a status code
// plus a worked duration. It is recomputed on demand, never authoritative
// on its own.
type DayResolution struct {
	EmployeeID    string
	Date          time.Time
	Code          StatusCode
	Worked        time.Duration
	StillAccruing bool
}

func (r DayResolution) WorkMinutes() int {
	return int(r.Worked.Minutes())
}

// DaySummary is the persisted snapshot of a DayResolution, refreshed by
// clock-out, the reconciliation sweep, and regularization recompute.
type DaySummary struct {
	EmployeeID  string
	CompanyID   string
	Date        time.Time
	Code        StatusCode
	WorkMinutes int
	UpdatedAt   time.Time
}

// DayKey normalizes a local timestamp to its calendar-day key.
func DayKey(local time.Time) time.Time {
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two day keys name the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

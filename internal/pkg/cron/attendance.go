package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
)

// AttendanceJobs wires the reconciliation service into the scheduler. The
// scheduler only owns triggering; the date-scoped semantics live in the
// service so operational tooling can invoke the same entry points directly.
type AttendanceJobs struct {
	reconcile attendance.ReconcileService
	daysBack  int
}

func NewAttendanceJobs(reconcile attendance.ReconcileService, daysBack int) *AttendanceJobs {
	return &AttendanceJobs{
		reconcile: reconcile,
		daysBack:  daysBack,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("close_abandoned_sessions", interval, j.CloseAbandonedSessions)
	scheduler.AddJob("mark_absent_days", interval, j.MarkAbsentDays)
}

func (j *AttendanceJobs) CloseAbandonedSessions(ctx context.Context) error {
	today := attendance.DayKey(time.Now().UTC())

	closed, err := j.reconcile.CloseAbandonedSessions(ctx, today, j.daysBack)
	if err != nil {
		return err
	}

	if closed > 0 {
		slog.Info("Cron: closed abandoned sessions", "count", closed)
	}
	return nil
}

func (j *AttendanceJobs) MarkAbsentDays(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC); yesterday is settled
	// everywhere by then for the zones this deployment serves.
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	yesterday := attendance.DayKey(time.Now().UTC().AddDate(0, 0, -1))

	marked, err := j.reconcile.MarkAbsentDays(ctx, yesterday, yesterday)
	if err != nil {
		return err
	}

	if marked > 0 {
		slog.Info("Cron: marked absent days", "count", marked)
	}
	return nil
}

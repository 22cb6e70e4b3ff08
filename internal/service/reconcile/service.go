package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/domain/employee"
)

type ReconcileServiceImpl struct {
	sessionRepo  attendance.SessionRepository
	summaryRepo  attendance.DaySummaryRepository
	employeeRepo employee.EmployeeRepository
	resolver     attendance.Resolver

	now func() time.Time
}

func NewReconcileService(
	sessionRepo attendance.SessionRepository,
	summaryRepo attendance.DaySummaryRepository,
	employeeRepo employee.EmployeeRepository,
	resolver attendance.Resolver,
) attendance.ReconcileService {
	return &ReconcileServiceImpl{
		sessionRepo:  sessionRepo,
		summaryRepo:  summaryRepo,
		employeeRepo: employeeRepo,
		resolver:     resolver,
		now:          time.Now,
	}
}

// CloseAbandonedSessions implements attendance.ReconcileService. Each
// abandoned session is stamped with 23:59:59 of its own day in its own
// zone, so the derived hours stay bounded by the day the work started on.
func (s *ReconcileServiceImpl) CloseAbandonedSessions(ctx context.Context, processingDay time.Time, daysBack int) (int, error) {
	processingDay = attendance.DayKey(processingDay)
	windowStart := processingDay.AddDate(0, 0, -daysBack)

	open, err := s.sessionRepo.ListOpenBefore(ctx, processingDay)
	if err != nil {
		return 0, fmt.Errorf("failed to list open sessions: %w", err)
	}

	closed := 0
	for _, session := range open {
		if session.Date.Before(windowStart) {
			slog.Warn("Open session older than sweep window, leaving for manual review",
				"session_id", session.ID, "employee_id", session.EmployeeID,
				"date", session.Date.Format("2006-01-02"))
			continue
		}

		loc, lerr := time.LoadLocation(session.Timezone)
		if lerr != nil {
			loc = time.UTC
		}

		// The session's zone may still be on its clock-in day even though
		// the processing day has moved on in UTC.
		if attendance.SameDay(session.Date, s.now().In(loc)) {
			continue
		}

		endOfDay := time.Date(
			session.Date.Year(), session.Date.Month(), session.Date.Day(),
			23, 59, 59, 0, loc,
		).UTC()

		if err := s.sessionRepo.CloseByID(ctx, session.ID, endOfDay); err != nil {
			if errors.Is(err, attendance.ErrSessionNotFound) {
				// Closed by another sweep run or a late clock-out.
				continue
			}
			slog.Error("Failed to close abandoned session",
				"session_id", session.ID, "employee_id", session.EmployeeID, "error", err)
			continue
		}
		closed++

		if err := s.refreshSummary(ctx, session.EmployeeID, session.CompanyID, session.Date); err != nil {
			slog.Error("Failed to refresh day summary after forced close",
				"session_id", session.ID, "employee_id", session.EmployeeID, "error", err)
		}
	}

	return closed, nil
}

// MarkAbsentDays implements attendance.ReconcileService.
func (s *ReconcileServiceImpl) MarkAbsentDays(ctx context.Context, from, to time.Time) (int, error) {
	from = attendance.DayKey(from)
	to = attendance.DayKey(to)

	// Never resolve today or the future: the day is still in progress.
	today := attendance.DayKey(s.now().UTC())
	if !to.Before(today) {
		to = today.AddDate(0, 0, -1)
	}
	if to.Before(from) {
		return 0, nil
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list active employees: %w", err)
	}

	written := 0
	for _, emp := range employees {
		for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
			existing, err := s.summaryRepo.Get(ctx, emp.ID, day)
			if err != nil {
				slog.Error("Failed to read day summary",
					"employee_id", emp.ID, "date", day.Format("2006-01-02"), "error", err)
				continue
			}
			if existing != nil {
				continue
			}

			sessions, err := s.sessionRepo.ListByEmployeeAndDate(ctx, emp.ID, day)
			if err != nil {
				slog.Error("Failed to list sessions",
					"employee_id", emp.ID, "date", day.Format("2006-01-02"), "error", err)
				continue
			}
			if len(sessions) > 0 {
				// Clock-out or the forced-close sweep owns this day.
				continue
			}

			if err := s.refreshSummary(ctx, emp.ID, emp.CompanyID, day); err != nil {
				slog.Error("Failed to resolve and persist day",
					"employee_id", emp.ID, "date", day.Format("2006-01-02"), "error", err)
				continue
			}
			written++
		}
	}

	return written, nil
}

func (s *ReconcileServiceImpl) refreshSummary(ctx context.Context, employeeID, companyID string, day time.Time) error {
	resolution, err := s.resolver.Resolve(ctx, employeeID, day)
	if err != nil {
		return err
	}

	return s.summaryRepo.Upsert(ctx, attendance.DaySummary{
		EmployeeID:  employeeID,
		CompanyID:   companyID,
		Date:        resolution.Date,
		Code:        resolution.Code,
		WorkMinutes: resolution.WorkMinutes(),
	})
}

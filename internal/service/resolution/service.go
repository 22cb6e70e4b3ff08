package resolution

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse/attendance-backend-go/internal/domain/holiday"
	"github.com/workpulse/attendance-backend-go/internal/domain/leave"
)

type ResolverImpl struct {
	sessionRepo  attendance.SessionRepository
	employeeRepo employee.EmployeeRepository
	holidayRepo  holiday.HolidayRepository
	leaveRepo    leave.LeaveRepository
	rules        []Rule
}

func NewResolver(
	sessionRepo attendance.SessionRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	leaveRepo leave.LeaveRepository,
) attendance.Resolver {
	return &ResolverImpl{
		sessionRepo:  sessionRepo,
		employeeRepo: employeeRepo,
		holidayRepo:  holidayRepo,
		leaveRepo:    leaveRepo,
		rules:        Rules(),
	}
}

// Resolve implements attendance.Resolver. It is a pure function of the day's
// sessions and the external holiday/rest-day/leave inputs; nothing is written.
func (r *ResolverImpl) Resolve(ctx context.Context, employeeID string, day time.Time) (attendance.DayResolution, error) {
	day = attendance.DayKey(day)

	emp, err := r.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.DayResolution{}, fmt.Errorf("failed to get employee: %w", err)
	}

	sessions, err := r.sessionRepo.ListByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.DayResolution{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	leaveRec, err := r.leaveRepo.RecordFor(ctx, employeeID, day)
	if err != nil {
		return attendance.DayResolution{}, fmt.Errorf("failed to get leave record: %w", err)
	}

	isHoliday, err := r.holidayRepo.IsHoliday(ctx, emp.CompanyID, emp.LocationID, day)
	if err != nil {
		return attendance.DayResolution{}, fmt.Errorf("failed to check holiday: %w", err)
	}

	facts := DayFacts{
		HasClockIn: attendance.HasClockIn(sessions),
		IsHoliday:  isHoliday,
		IsRestDay:  emp.RestDays.IsRestDay(day.Weekday()),
	}
	if leaveRec != nil {
		kind := leaveRec.Kind
		facts.LeaveKind = &kind
	}

	worked, stillAccruing := attendance.WorkedDuration(sessions)

	return attendance.DayResolution{
		EmployeeID:    employeeID,
		Date:          day,
		Code:          Evaluate(r.rules, facts),
		Worked:        worked,
		StillAccruing: stillAccruing,
	}, nil
}

package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse/attendance-backend-go/internal/pkg/events"
	"github.com/workpulse/attendance-backend-go/internal/pkg/timezone"
	"github.com/workpulse/attendance-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	sessionRepo  attendance.SessionRepository
	summaryRepo  attendance.DaySummaryRepository
	employeeRepo employee.EmployeeRepository
	resolver     attendance.Resolver
	tzResolver   timezone.Resolver
	hub          *events.Hub
	tx           postgresql.TxManager

	now func() time.Time
}

func NewAttendanceService(
	sessionRepo attendance.SessionRepository,
	summaryRepo attendance.DaySummaryRepository,
	employeeRepo employee.EmployeeRepository,
	resolver attendance.Resolver,
	tzResolver timezone.Resolver,
	hub *events.Hub,
	tx postgresql.TxManager,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		sessionRepo:  sessionRepo,
		summaryRepo:  summaryRepo,
		employeeRepo: employeeRepo,
		resolver:     resolver,
		tzResolver:   tzResolver,
		hub:          hub,
		tx:           tx,
		now:          time.Now,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format(time.RFC3339)
	return &format
}

func newSessionResponse(s attendance.Session, loc *time.Location) attendance.SessionResponse {
	resp := attendance.SessionResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		Date:         s.Date.Format("2006-01-02"),
		Kind:         string(s.Kind),
		Timezone:     s.Timezone,
		ClockInUTC:   s.ClockIn.UTC().Format(time.RFC3339),
		ClockInLocal: s.ClockIn.In(loc).Format("2006-01-02 15:04:05"),
		ClockOutUTC:  timePtrToString(s.ClockOut),
	}
	if s.ClockOut != nil {
		local := s.ClockOut.In(loc).Format("2006-01-02 15:04:05")
		resp.ClockOutLocal = &local
		mins := int(s.Duration().Minutes())
		resp.WorkMinutes = &mins
	}
	return resp
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return attendance.SessionResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return attendance.SessionResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	nowUTC := a.now().UTC()
	loc := a.tzResolver.Resolve(ctx, employeeID, req.Timezone, req.Latitude, req.Longitude)
	nowLocal := nowUTC.In(loc)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to generate session ID: %w", err)
	}

	session := attendance.Session{
		ID:               id.String(),
		EmployeeID:       employeeID,
		CompanyID:        companyID,
		Date:             attendance.DayKey(nowLocal),
		Kind:             attendance.SessionKind(req.Kind),
		Timezone:         loc.String(),
		ClockIn:          nowUTC,
		ClockInLatitude:  req.Latitude,
		ClockInLongitude: req.Longitude,
	}

	created, err := a.sessionRepo.Create(ctx, session)
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	a.hub.Publish(events.Event{
		EmployeeID: employeeID,
		Type:       events.TypeSessionOpened,
		OccurredAt: nowUTC,
		Data: map[string]string{
			"session_id": created.ID,
			"date":       created.Date.Format("2006-01-02"),
			"kind":       string(created.Kind),
		},
	})

	return newSessionResponse(created, loc), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.SessionResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return attendance.SessionResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	nowUTC := a.now().UTC()

	// Close the session and refresh the persisted snapshot for its day in
	// one transaction, so report reads never see a closed session with a
	// stale summary.
	var closed attendance.Session
	err = a.tx.WithTx(ctx, func(txCtx context.Context) error {
		closed, err = a.sessionRepo.CloseOpen(txCtx, employeeID, nowUTC)
		if err != nil {
			return err
		}
		return a.refreshSummary(txCtx, closed.EmployeeID, closed.CompanyID, closed.Date)
	})
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	loc, lerr := time.LoadLocation(closed.Timezone)
	if lerr != nil {
		loc = time.UTC
	}

	a.hub.Publish(events.Event{
		EmployeeID: employeeID,
		Type:       events.TypeSessionClosed,
		OccurredAt: nowUTC,
		Data: map[string]string{
			"session_id": closed.ID,
			"date":       closed.Date.Format("2006-01-02"),
		},
	})

	return newSessionResponse(closed, loc), nil
}

// HoursFor implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) HoursFor(ctx context.Context, employeeID string, day time.Time) (time.Duration, bool, error) {
	sessions, err := a.sessionRepo.ListByEmployeeAndDate(ctx, employeeID, attendance.DayKey(day))
	if err != nil {
		return 0, false, fmt.Errorf("failed to list sessions: %w", err)
	}

	worked, stillAccruing := attendance.WorkedDuration(sessions)
	return worked, stillAccruing, nil
}

// Recompute implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Recompute(ctx context.Context, employeeID string, day time.Time) (attendance.DayResolution, error) {
	emp, err := a.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.DayResolution{}, fmt.Errorf("failed to get employee: %w", err)
	}

	resolution, err := a.resolver.Resolve(ctx, employeeID, day)
	if err != nil {
		return attendance.DayResolution{}, err
	}

	if err := a.summaryRepo.Upsert(ctx, attendance.DaySummary{
		EmployeeID:  employeeID,
		CompanyID:   emp.CompanyID,
		Date:        resolution.Date,
		Code:        resolution.Code,
		WorkMinutes: resolution.WorkMinutes(),
	}); err != nil {
		return attendance.DayResolution{}, fmt.Errorf("failed to upsert day summary: %w", err)
	}

	return resolution, nil
}

// MyDays implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MyDays(ctx context.Context, filter attendance.MyDaysFilter) ([]attendance.DayResolutionResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return nil, fmt.Errorf("employee_id claim is missing or invalid")
	}

	from, _ := time.Parse("2006-01-02", filter.From)
	to, _ := time.Parse("2006-01-02", filter.To)

	summaries, err := a.summaryRepo.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list day summaries: %w", err)
	}

	responses := make([]attendance.DayResolutionResponse, 0, len(summaries))
	for _, s := range summaries {
		worked := time.Duration(s.WorkMinutes) * time.Minute
		responses = append(responses, attendance.DayResolutionResponse{
			EmployeeID:  s.EmployeeID,
			Date:        s.Date.Format("2006-01-02"),
			Status:      string(s.Code),
			WorkMinutes: s.WorkMinutes,
			WorkHours:   attendance.FormatWorked(worked),
		})
	}

	return responses, nil
}

func (a *AttendanceServiceImpl) refreshSummary(ctx context.Context, employeeID, companyID string, day time.Time) error {
	resolution, err := a.resolver.Resolve(ctx, employeeID, day)
	if err != nil {
		return fmt.Errorf("failed to resolve day: %w", err)
	}

	if err := a.summaryRepo.Upsert(ctx, attendance.DaySummary{
		EmployeeID:  employeeID,
		CompanyID:   companyID,
		Date:        resolution.Date,
		Code:        resolution.Code,
		WorkMinutes: resolution.WorkMinutes(),
	}); err != nil {
		return fmt.Errorf("failed to upsert day summary: %w", err)
	}

	return nil
}

// Package testfixtures provides in-memory repository implementations and
// auth helpers shared by service tests. Nothing here touches a database.
package testfixtures

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse/attendance-backend-go/internal/domain/holiday"
	"github.com/workpulse/attendance-backend-go/internal/domain/leave"
)

// MemSessionRepo is an in-memory attendance.SessionRepository. It enforces
// the same single-open-session rule the SQL implementation enforces with its
// partial unique index.
type MemSessionRepo struct {
	mu       sync.Mutex
	Sessions []attendance.Session
}

func NewMemSessionRepo() *MemSessionRepo {
	return &MemSessionRepo{}
}

func (r *MemSessionRepo) Create(_ context.Context, session attendance.Session) (attendance.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.Sessions {
		if s.EmployeeID == session.EmployeeID && s.IsOpen() {
			return attendance.Session{}, attendance.ErrAlreadyClockedIn
		}
	}

	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	r.Sessions = append(r.Sessions, session)
	return session, nil
}

func (r *MemSessionRepo) CloseOpen(_ context.Context, employeeID string, clockOutUTC time.Time) (attendance.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.Sessions {
		if s.EmployeeID == employeeID && s.IsOpen() {
			out := clockOutUTC
			r.Sessions[i].ClockOut = &out
			r.Sessions[i].UpdatedAt = clockOutUTC
			return r.Sessions[i], nil
		}
	}
	return attendance.Session{}, attendance.ErrNoOpenSession
}

func (r *MemSessionRepo) GetOpen(_ context.Context, employeeID string) (attendance.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.Sessions {
		if s.EmployeeID == employeeID && s.IsOpen() {
			return s, nil
		}
	}
	return attendance.Session{}, attendance.ErrNoOpenSession
}

func (r *MemSessionRepo) CloseByID(_ context.Context, sessionID string, clockOutUTC time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.Sessions {
		if s.ID == sessionID && s.IsOpen() {
			out := clockOutUTC
			r.Sessions[i].ClockOut = &out
			r.Sessions[i].UpdatedAt = clockOutUTC
			return nil
		}
	}
	return attendance.ErrSessionNotFound
}

func (r *MemSessionRepo) ListByEmployeeAndDate(_ context.Context, employeeID string, day time.Time) ([]attendance.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []attendance.Session
	for _, s := range r.Sessions {
		if s.EmployeeID == employeeID && attendance.SameDay(s.Date, day) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClockIn.Before(out[j].ClockIn) })
	return out, nil
}

func (r *MemSessionRepo) ListOpenBefore(_ context.Context, day time.Time) ([]attendance.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []attendance.Session
	for _, s := range r.Sessions {
		if s.IsOpen() && s.Date.Before(attendance.DayKey(day)) {
			out = append(out, s)
		}
	}
	return out, nil
}

// MemSummaryRepo is an in-memory attendance.DaySummaryRepository.
type MemSummaryRepo struct {
	mu        sync.Mutex
	Summaries map[string]attendance.DaySummary
}

func NewMemSummaryRepo() *MemSummaryRepo {
	return &MemSummaryRepo{Summaries: make(map[string]attendance.DaySummary)}
}

func summaryKey(employeeID string, day time.Time) string {
	return employeeID + "/" + day.Format("2006-01-02")
}

func (r *MemSummaryRepo) Upsert(_ context.Context, summary attendance.DaySummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	summary.UpdatedAt = time.Now().UTC()
	r.Summaries[summaryKey(summary.EmployeeID, summary.Date)] = summary
	return nil
}

func (r *MemSummaryRepo) Get(_ context.Context, employeeID string, day time.Time) (*attendance.DaySummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.Summaries[summaryKey(employeeID, attendance.DayKey(day))]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *MemSummaryRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]attendance.DaySummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []attendance.DaySummary
	for _, s := range r.Summaries {
		if s.EmployeeID == employeeID && !s.Date.Before(attendance.DayKey(from)) && !s.Date.After(attendance.DayKey(to)) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// MemEmployeeRepo is an in-memory employee.EmployeeRepository.
type MemEmployeeRepo struct {
	Employees map[string]employee.Employee
}

func NewMemEmployeeRepo(emps ...employee.Employee) *MemEmployeeRepo {
	r := &MemEmployeeRepo{Employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		r.Employees[e.ID] = e
	}
	return r
}

func (r *MemEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if e, ok := r.Employees[id]; ok {
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *MemEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.Employees {
		if e.IsActive {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemEmployeeRepo) ListActiveByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.Employees {
		if e.CompanyID == companyID && e.IsActive {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// MemHolidayRepo is an in-memory holiday.HolidayRepository.
type MemHolidayRepo struct {
	Holidays []holiday.Holiday
}

func (r *MemHolidayRepo) IsHoliday(_ context.Context, companyID string, locationID *string, day time.Time) (bool, error) {
	if locationID == nil {
		return false, nil
	}
	for _, h := range r.Holidays {
		if h.IsActive && h.CompanyID == companyID && h.LocationID == *locationID && attendance.SameDay(h.Date, day) {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemHolidayRepo) ListByRange(_ context.Context, companyID string, from, to time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range r.Holidays {
		if h.IsActive && h.CompanyID == companyID && !h.Date.Before(attendance.DayKey(from)) && !h.Date.After(attendance.DayKey(to)) {
			out = append(out, h)
		}
	}
	return out, nil
}

// MemLeaveRepo is an in-memory leave.LeaveRepository.
type MemLeaveRepo struct {
	Records []leave.LeaveRecord
}

func (r *MemLeaveRepo) RecordFor(_ context.Context, employeeID string, day time.Time) (*leave.LeaveRecord, error) {
	for _, rec := range r.Records {
		if rec.EmployeeID == employeeID && attendance.SameDay(rec.Date, day) {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemLeaveRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRecord, error) {
	var out []leave.LeaveRecord
	for _, rec := range r.Records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(attendance.DayKey(from)) && !rec.Date.After(attendance.DayKey(to)) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// NoopTx satisfies postgresql.TxManager for in-memory tests: there is no
// transaction to open, fn just runs.
type NoopTx struct{}

func (NoopTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// StaticTimezoneResolver always answers with one fixed zone, so service
// tests control where local midnight falls.
type StaticTimezoneResolver struct {
	Loc *time.Location
}

func (r StaticTimezoneResolver) Resolve(_ context.Context, _ string, _ *string, _, _ *float64) *time.Location {
	if r.Loc == nil {
		return time.UTC
	}
	return r.Loc
}

package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse/attendance-backend-go/internal/domain/holiday"
	"github.com/workpulse/attendance-backend-go/internal/domain/leave"
	reportdomain "github.com/workpulse/attendance-backend-go/internal/domain/report"
	"github.com/workpulse/attendance-backend-go/internal/service/resolution"
	"github.com/workpulse/attendance-backend-go/internal/testfixtures"
)

const (
	empID     = "0195f1e2-1111-7000-8000-000000000003"
	companyID = "0195f1e2-2222-7000-8000-000000000003"
	locID     = "0195f1e2-3333-7000-8000-000000000003"
)

type reportEnv struct {
	svc      *ReportServiceImpl
	sessions *testfixtures.MemSessionRepo
	summary  *testfixtures.MemSummaryRepo
	holidays *testfixtures.MemHolidayRepo
	leaves   *testfixtures.MemLeaveRepo
}

func newReportEnv(t *testing.T) *reportEnv {
	t.Helper()

	sessions := testfixtures.NewMemSessionRepo()
	summary := testfixtures.NewMemSummaryRepo()
	loc := locID
	employees := testfixtures.NewMemEmployeeRepo(employee.Employee{
		ID:         empID,
		CompanyID:  companyID,
		LocationID: &loc,
		FullName:   "Meera Iyer",
		IsActive:   true,
		RestDays:   employee.RestDayConfig{Sunday: true},
	})
	holidays := &testfixtures.MemHolidayRepo{}
	leaves := &testfixtures.MemLeaveRepo{}

	resolver := resolution.NewResolver(sessions, employees, holidays, leaves)
	svc := NewReportService(summary, employees, resolver).(*ReportServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 3, 9, 6, 0, 0, 0, time.UTC) }

	return &reportEnv{svc: svc, sessions: sessions, summary: summary, holidays: holidays, leaves: leaves}
}

func (e *reportEnv) putSummary(t *testing.T, day time.Time, code attendance.StatusCode, minutes int) {
	t.Helper()
	require.NoError(t, e.summary.Upsert(context.Background(), attendance.DaySummary{
		EmployeeID: empID, CompanyID: companyID, Date: day,
		Code: code, WorkMinutes: minutes,
	}))
}

// One week, 2026-03-01 (Sunday) through 2026-03-07: rest day, holiday,
// three present days, one leave, one absent.
func TestAggregate_WeekRollup(t *testing.T) {
	env := newReportEnv(t)

	env.putSummary(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), attendance.StatusWeeklyOff, 0)
	env.putSummary(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), attendance.StatusHoliday, 0)
	env.putSummary(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 510)
	env.putSummary(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 480)
	env.putSummary(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), attendance.StatusLeave, 0)
	env.putSummary(t, time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 495)
	env.putSummary(t, time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), attendance.StatusAbsent, 0)

	resp, err := env.svc.Aggregate(context.Background(), reportdomain.ReportFilter{
		From: "2026-03-01", To: "2026-03-07", CompanyID: companyID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Employees, 1)
	row := resp.Employees[0]

	assert.Equal(t, 7, resp.TotalDays)
	assert.Equal(t, 3, row.Present)
	assert.Equal(t, 1, row.Absent)
	assert.Equal(t, 1, row.Leave)
	assert.Equal(t, 1, row.WeeklyOff)
	assert.Equal(t, 1, row.Holiday)
	// 7 days minus one weekly off and one holiday.
	assert.Equal(t, 5, row.WorkingDays)
	assert.Equal(t, 60.0, row.PresentPercent)
	assert.Equal(t, 1485, row.WorkMinutes)
	assert.Len(t, row.Days, 7)
	assert.Equal(t, "WO", row.Days[0].Code)
	assert.Equal(t, "H", row.Days[1].Code)
}

func TestAggregate_ClampsRangeToToday(t *testing.T) {
	env := newReportEnv(t)

	// now is 2026-03-09; request runs a week into the future.
	resp, err := env.svc.Aggregate(context.Background(), reportdomain.ReportFilter{
		From: "2026-03-08", To: "2026-03-15", CompanyID: companyID,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-09", resp.To)
	assert.Equal(t, 2, resp.TotalDays)
}

func TestAggregate_ResolvesDaysWithoutSummaries(t *testing.T) {
	env := newReportEnv(t)

	// Nothing persisted; Sunday 2026-03-01 resolves to WO, Monday to A.
	resp, err := env.svc.Aggregate(context.Background(), reportdomain.ReportFilter{
		From: "2026-03-01", To: "2026-03-02", CompanyID: companyID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Employees, 1)
	row := resp.Employees[0]

	assert.Equal(t, 1, row.WeeklyOff)
	assert.Equal(t, 1, row.Absent)
	assert.Equal(t, 1, row.WorkingDays)
	assert.Equal(t, 0.0, row.PresentPercent)
}

func TestAggregate_ZeroWorkingDaysMeansZeroPercent(t *testing.T) {
	env := newReportEnv(t)

	env.holidays.Holidays = []holiday.Holiday{{
		ID: "hol-1", CompanyID: companyID, LocationID: locID,
		Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Name: "Holi", IsActive: true,
	}}

	// Sunday rest day and Monday holiday: no working days at all.
	resp, err := env.svc.Aggregate(context.Background(), reportdomain.ReportFilter{
		From: "2026-03-01", To: "2026-03-02", CompanyID: companyID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Employees, 1)

	assert.Equal(t, 0, resp.Employees[0].WorkingDays)
	assert.Equal(t, 0.0, resp.Employees[0].PresentPercent)
}

func TestAggregate_PercentRoundsToOneDecimal(t *testing.T) {
	env := newReportEnv(t)

	env.leaves.Records = []leave.LeaveRecord{}
	env.putSummary(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 480)
	env.putSummary(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), attendance.StatusAbsent, 0)
	env.putSummary(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), attendance.StatusAbsent, 0)

	// 1 present of 3 working days: 33.333... rounds to 33.3.
	resp, err := env.svc.Aggregate(context.Background(), reportdomain.ReportFilter{
		From: "2026-03-02", To: "2026-03-04", CompanyID: companyID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Employees, 1)
	assert.Equal(t, 33.3, resp.Employees[0].PresentPercent)
}

func TestAggregate_RejectsInvertedRange(t *testing.T) {
	env := newReportEnv(t)

	_, err := env.svc.Aggregate(context.Background(), reportdomain.ReportFilter{
		From: "2026-03-05", To: "2026-03-01", CompanyID: companyID,
	})
	assert.Error(t, err)
}

func TestExportXLSX_ProducesWorkbook(t *testing.T) {
	env := newReportEnv(t)
	env.putSummary(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 510)

	data, err := env.svc.ExportXLSX(context.Background(), reportdomain.ReportFilter{
		From: "2026-03-03", To: "2026-03-03", CompanyID: companyID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// XLSX files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}

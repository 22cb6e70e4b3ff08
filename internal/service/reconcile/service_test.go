package reconcile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse/attendance-backend-go/internal/domain/holiday"
	"github.com/workpulse/attendance-backend-go/internal/service/resolution"
	"github.com/workpulse/attendance-backend-go/internal/testfixtures"
)

const (
	empID     = "0195f1e2-1111-7000-8000-000000000002"
	companyID = "0195f1e2-2222-7000-8000-000000000002"
	locID     = "0195f1e2-3333-7000-8000-000000000002"
)

type sweepEnv struct {
	svc      *ReconcileServiceImpl
	sessions *testfixtures.MemSessionRepo
	summary  *testfixtures.MemSummaryRepo
	holidays *testfixtures.MemHolidayRepo
}

func newSweepEnv(t *testing.T) *sweepEnv {
	t.Helper()

	sessions := testfixtures.NewMemSessionRepo()
	summary := testfixtures.NewMemSummaryRepo()
	loc := locID
	employees := testfixtures.NewMemEmployeeRepo(employee.Employee{
		ID:         empID,
		CompanyID:  companyID,
		LocationID: &loc,
		FullName:   "Ravi Nair",
		IsActive:   true,
		RestDays:   employee.RestDayConfig{Sunday: true},
	})
	holidays := &testfixtures.MemHolidayRepo{}
	leaves := &testfixtures.MemLeaveRepo{}

	resolver := resolution.NewResolver(sessions, employees, holidays, leaves)
	svc := NewReconcileService(sessions, summary, employees, resolver).(*ReconcileServiceImpl)

	return &sweepEnv{svc: svc, sessions: sessions, summary: summary, holidays: holidays}
}

func openSession(t *testing.T, env *sweepEnv, id string, day time.Time, zone string, clockInUTC time.Time) {
	t.Helper()
	_, err := env.sessions.Create(context.Background(), attendance.Session{
		ID:         id,
		EmployeeID: empID,
		CompanyID:  companyID,
		Date:       day,
		Kind:       attendance.KindOnSite,
		Timezone:   zone,
		ClockIn:    clockInUTC,
	})
	require.NoError(t, err)
}

func TestCloseAbandonedSessions_StampsEndOfSessionDay(t *testing.T) {
	env := newSweepEnv(t)
	ctx := context.Background()

	// Clock-in 09:30 Kolkata on 2026-03-03, never clocked out.
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	clockIn := time.Date(2026, 3, 3, 4, 0, 0, 0, time.UTC)
	openSession(t, env, "sess-1", day, "Asia/Kolkata", clockIn)

	// The sweep runs the next day.
	env.svc.now = func() time.Time { return time.Date(2026, 3, 4, 6, 0, 0, 0, time.UTC) }

	closed, err := env.svc.CloseAbandonedSessions(ctx, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	got := env.sessions.Sessions[0]
	require.NotNil(t, got.ClockOut)
	// 23:59:59 Kolkata on 2026-03-03 is 18:29:59 UTC.
	assert.Equal(t, time.Date(2026, 3, 3, 18, 29, 59, 0, time.UTC), got.ClockOut.UTC())

	sum, err := env.summary.Get(ctx, empID, day)
	require.NoError(t, err)
	require.NotNil(t, sum)
	assert.Equal(t, attendance.StatusPresent, sum.Code)
	// 09:30 to 23:59:59 local, truncated to whole minutes.
	assert.Equal(t, 869, sum.WorkMinutes)
}

func TestCloseAbandonedSessions_Idempotent(t *testing.T) {
	env := newSweepEnv(t)
	ctx := context.Background()

	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	openSession(t, env, "sess-1", day, "UTC", day.Add(9*time.Hour))
	env.svc.now = func() time.Time { return time.Date(2026, 3, 4, 6, 0, 0, 0, time.UTC) }
	processing := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	closed, err := env.svc.CloseAbandonedSessions(ctx, processing, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	closed, err = env.svc.CloseAbandonedSessions(ctx, processing, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
}

func TestCloseAbandonedSessions_FreesEmployeeForANewClockIn(t *testing.T) {
	env := newSweepEnv(t)
	ctx := context.Background()

	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	openSession(t, env, "sess-1", day, "UTC", day.Add(14*time.Hour+14*time.Minute))
	env.svc.now = func() time.Time { return time.Date(2026, 3, 4, 6, 0, 0, 0, time.UTC) }

	// Blocked while the abandoned session is open.
	_, err := env.sessions.Create(ctx, attendance.Session{
		ID: "sess-2", EmployeeID: empID, CompanyID: companyID,
		Date: day.AddDate(0, 0, 1), Kind: attendance.KindOnSite, Timezone: "UTC",
		ClockIn: day.Add(33 * time.Hour),
	})
	require.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)

	closed, err := env.svc.CloseAbandonedSessions(ctx, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), 7)
	require.NoError(t, err)
	require.Equal(t, 1, closed)

	_, err = env.sessions.Create(ctx, attendance.Session{
		ID: "sess-2", EmployeeID: empID, CompanyID: companyID,
		Date: day.AddDate(0, 0, 1), Kind: attendance.KindOnSite, Timezone: "UTC",
		ClockIn: day.Add(33 * time.Hour),
	})
	assert.NoError(t, err)
}

func TestCloseAbandonedSessions_SkipsSessionsStillOnTheirLocalDay(t *testing.T) {
	env := newSweepEnv(t)
	ctx := context.Background()

	// Honolulu (-10): at 06:00 UTC on March 4 it is still 20:00 on March 3.
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	openSession(t, env, "sess-1", day, "Pacific/Honolulu", time.Date(2026, 3, 3, 19, 0, 0, 0, time.UTC))
	env.svc.now = func() time.Time { return time.Date(2026, 3, 4, 6, 0, 0, 0, time.UTC) }

	closed, err := env.svc.CloseAbandonedSessions(ctx, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), 7)
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
	assert.True(t, env.sessions.Sessions[0].IsOpen())
}

func TestCloseAbandonedSessions_RespectsWindow(t *testing.T) {
	env := newSweepEnv(t)
	ctx := context.Background()

	staleDay := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	openSession(t, env, "sess-old", staleDay, "UTC", staleDay.Add(9*time.Hour))
	env.svc.now = func() time.Time { return time.Date(2026, 3, 4, 6, 0, 0, 0, time.UTC) }

	closed, err := env.svc.CloseAbandonedSessions(ctx, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), 7)
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
	assert.True(t, env.sessions.Sessions[0].IsOpen())
}

func TestMarkAbsentDays_ResolvesUntouchedDays(t *testing.T) {
	env := newSweepEnv(t)
	ctx := context.Background()
	env.svc.now = func() time.Time { return time.Date(2026, 3, 4, 6, 0, 0, 0, time.UTC) }

	// Monday 2026-03-02 has a completed session; Tuesday has nothing;
	// Sunday 2026-03-01 is the configured rest day.
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	out := monday.Add(17 * time.Hour)
	_, err := env.sessions.Create(ctx, attendance.Session{
		ID: "sess-mon", EmployeeID: empID, CompanyID: companyID,
		Date: monday, Kind: attendance.KindOnSite, Timezone: "UTC",
		ClockIn: monday.Add(9 * time.Hour), ClockOut: &out,
	})
	require.NoError(t, err)

	written, err := env.svc.MarkAbsentDays(ctx,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	sunday, err := env.summary.Get(ctx, empID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, sunday)
	assert.Equal(t, attendance.StatusWeeklyOff, sunday.Code)

	mondaySum, err := env.summary.Get(ctx, empID, monday)
	require.NoError(t, err)
	assert.Nil(t, mondaySum, "days with sessions belong to the clock-out path")

	tuesday, err := env.summary.Get(ctx, empID, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, tuesday)
	assert.Equal(t, attendance.StatusAbsent, tuesday.Code)
}

func TestMarkAbsentDays_NeverTouchesTodayOrFuture(t *testing.T) {
	env := newSweepEnv(t)
	ctx := context.Background()
	env.svc.now = func() time.Time { return time.Date(2026, 3, 4, 6, 0, 0, 0, time.UTC) }

	written, err := env.svc.MarkAbsentDays(ctx,
		time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, written)
}

func TestMarkAbsentDays_HolidayWinsOverAbsent(t *testing.T) {
	env := newSweepEnv(t)
	ctx := context.Background()
	env.svc.now = func() time.Time { return time.Date(2026, 3, 4, 6, 0, 0, 0, time.UTC) }

	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	env.holidays.Holidays = []holiday.Holiday{{
		ID: "hol-1", CompanyID: companyID, LocationID: locID,
		Date: day, Name: "Holi", IsActive: true,
	}}

	written, err := env.svc.MarkAbsentDays(ctx, day, day)
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	sum, err := env.summary.Get(ctx, empID, day)
	require.NoError(t, err)
	require.NotNil(t, sum)
	assert.Equal(t, attendance.StatusHoliday, sum.Code)
}

func TestMarkAbsentDays_SkipsDaysAlreadySummarized(t *testing.T) {
	env := newSweepEnv(t)
	ctx := context.Background()
	env.svc.now = func() time.Time { return time.Date(2026, 3, 4, 6, 0, 0, 0, time.UTC) }

	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	require.NoError(t, env.summary.Upsert(ctx, attendance.DaySummary{
		EmployeeID: empID, CompanyID: companyID, Date: day,
		Code: attendance.StatusLeave,
	}))

	written, err := env.svc.MarkAbsentDays(ctx, day, day)
	require.NoError(t, err)
	assert.Equal(t, 0, written)

	sum, err := env.summary.Get(ctx, empID, day)
	require.NoError(t, err)
	require.NotNil(t, sum)
	assert.Equal(t, attendance.StatusLeave, sum.Code)
}

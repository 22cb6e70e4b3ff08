package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func completed(clockIn time.Time, d time.Duration) Session {
	out := clockIn.Add(d)
	return Session{ClockIn: clockIn, ClockOut: &out}
}

func TestWorkedDuration(t *testing.T) {
	base := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)

	t.Run("no sessions means zero", func(t *testing.T) {
		worked, accruing := WorkedDuration(nil)
		assert.Equal(t, time.Duration(0), worked)
		assert.False(t, accruing)
	})

	t.Run("single completed session", func(t *testing.T) {
		worked, accruing := WorkedDuration([]Session{
			completed(base, 8*time.Hour+30*time.Minute),
		})
		assert.Equal(t, 8*time.Hour+30*time.Minute, worked)
		assert.False(t, accruing)
	})

	t.Run("split shifts are additive", func(t *testing.T) {
		worked, accruing := WorkedDuration([]Session{
			completed(base, 3*time.Hour),
			completed(base.Add(4*time.Hour), 4*time.Hour+30*time.Minute),
		})
		assert.Equal(t, 7*time.Hour+30*time.Minute, worked)
		assert.False(t, accruing)
	})

	t.Run("open session contributes zero but flags accrual", func(t *testing.T) {
		worked, accruing := WorkedDuration([]Session{
			completed(base, 3*time.Hour),
			{ClockIn: base.Add(4 * time.Hour)},
		})
		assert.Equal(t, 3*time.Hour, worked)
		assert.True(t, accruing)
	})
}

func TestSessionDuration_OpenIsZero(t *testing.T) {
	s := Session{ClockIn: time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)}
	assert.True(t, s.IsOpen())
	assert.Equal(t, time.Duration(0), s.Duration())
}

func TestDayKey(t *testing.T) {
	kolkata, _ := time.LoadLocation("Asia/Kolkata")

	// 01:30 local on March 2 keys to March 2 even though it is still
	// March 1 in UTC.
	local := time.Date(2026, 3, 2, 1, 30, 0, 0, kolkata)
	key := DayKey(local)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), key)
	assert.True(t, SameDay(key, time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC)))
	assert.False(t, SameDay(key, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)))
}

func TestFormatWorked(t *testing.T) {
	assert.Equal(t, "8:30", FormatWorked(8*time.Hour+30*time.Minute))
	assert.Equal(t, "0:00", FormatWorked(0))
	assert.Equal(t, "0:05", FormatWorked(5*time.Minute))
	assert.Equal(t, "14:29", FormatWorked(14*time.Hour+29*time.Minute+59*time.Second))
}

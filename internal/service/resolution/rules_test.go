package resolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/domain/leave"
)

func kindPtr(k leave.Kind) *leave.Kind { return &k }

func TestEvaluate_PriorityChain(t *testing.T) {
	rules := Rules()

	cases := []struct {
		name  string
		facts DayFacts
		want  attendance.StatusCode
	}{
		{
			name:  "no inputs at all is absent",
			facts: DayFacts{},
			want:  attendance.StatusAbsent,
		},
		{
			name:  "clock-in alone is present",
			facts: DayFacts{HasClockIn: true},
			want:  attendance.StatusPresent,
		},
		{
			name:  "holiday outranks rest-day when nothing else exists",
			facts: DayFacts{IsHoliday: true, IsRestDay: true},
			want:  attendance.StatusHoliday,
		},
		{
			name:  "rest-day without holiday is weekly off",
			facts: DayFacts{IsRestDay: true},
			want:  attendance.StatusWeeklyOff,
		},
		{
			name:  "presence beats holiday once established",
			facts: DayFacts{HasClockIn: true, IsHoliday: true},
			want:  attendance.StatusPresent,
		},
		{
			name:  "presence beats rest-day",
			facts: DayFacts{HasClockIn: true, IsRestDay: true},
			want:  attendance.StatusPresent,
		},
		{
			name:  "full-day leave without clock-in",
			facts: DayFacts{LeaveKind: kindPtr(leave.KindLeave)},
			want:  attendance.StatusLeave,
		},
		{
			name:  "half-day leave without clock-in",
			facts: DayFacts{LeaveKind: kindPtr(leave.KindHalfDay)},
			want:  attendance.StatusHalfDay,
		},
		{
			name:  "half-day leave downgrades presence to HD",
			facts: DayFacts{HasClockIn: true, LeaveKind: kindPtr(leave.KindHalfDay)},
			want:  attendance.StatusHalfDay,
		},
		{
			name:  "full-day leave with clock-in is still present",
			facts: DayFacts{HasClockIn: true, LeaveKind: kindPtr(leave.KindLeave)},
			want:  attendance.StatusPresent,
		},
		{
			name:  "leave outranks holiday when neither has a clock-in",
			facts: DayFacts{LeaveKind: kindPtr(leave.KindLeave), IsHoliday: true},
			want:  attendance.StatusLeave,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Evaluate(rules, c.facts))
		})
	}
}

func TestRules_OrderIsFixed(t *testing.T) {
	names := make([]string, 0)
	for _, r := range Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"SessionPresence", "Leave", "Holiday", "RestDay", "Absent"}, names)
}

func TestEvaluate_EveryFactCombinationYieldsACode(t *testing.T) {
	rules := Rules()
	kinds := []*leave.Kind{nil, kindPtr(leave.KindLeave), kindPtr(leave.KindHalfDay)}
	bools := []bool{false, true}

	for _, clockIn := range bools {
		for _, kind := range kinds {
			for _, hol := range bools {
				for _, rest := range bools {
					code := Evaluate(rules, DayFacts{
						HasClockIn: clockIn,
						LeaveKind:  kind,
						IsHoliday:  hol,
						IsRestDay:  rest,
					})
					assert.NotEmpty(t, code)
				}
			}
		}
	}
}

package resolution

import (
	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/domain/leave"
)

// DayFacts is everything the rule chain needs about one employee-day,
// gathered up front so each rule stays a pure predicate.
type DayFacts struct {
	HasClockIn bool
	LeaveKind  *leave.Kind
	IsHoliday  bool
	IsRestDay  bool
}

// Rule is one named step of the resolution chain.
type Rule struct {
	Name  string
	Apply func(f DayFacts) (attendance.StatusCode, bool)
}

// Rules returns the resolution chain in its fixed evaluation order. A
// clock-in is ground truth for presence and always wins once established;
// administrative records only explain the absence of one. With no clock-in
// and no leave, holiday outranks rest-day.
func Rules() []Rule {
	return []Rule{
		{
			Name: "SessionPresence",
			Apply: func(f DayFacts) (attendance.StatusCode, bool) {
				if !f.HasClockIn {
					return "", false
				}
				if f.LeaveKind != nil && *f.LeaveKind == leave.KindHalfDay {
					return attendance.StatusHalfDay, true
				}
				return attendance.StatusPresent, true
			},
		},
		{
			Name: "Leave",
			Apply: func(f DayFacts) (attendance.StatusCode, bool) {
				if f.LeaveKind == nil {
					return "", false
				}
				if *f.LeaveKind == leave.KindHalfDay {
					return attendance.StatusHalfDay, true
				}
				return attendance.StatusLeave, true
			},
		},
		{
			Name: "Holiday",
			Apply: func(f DayFacts) (attendance.StatusCode, bool) {
				if f.IsHoliday {
					return attendance.StatusHoliday, true
				}
				return "", false
			},
		},
		{
			Name: "RestDay",
			Apply: func(f DayFacts) (attendance.StatusCode, bool) {
				if f.IsRestDay {
					return attendance.StatusWeeklyOff, true
				}
				return "", false
			},
		},
		{
			Name: "Absent",
			Apply: func(f DayFacts) (attendance.StatusCode, bool) {
				return attendance.StatusAbsent, true
			},
		},
	}
}

// Evaluate runs the chain and returns the first matching code. The Absent
// fallback guarantees a match.
func Evaluate(rules []Rule, f DayFacts) attendance.StatusCode {
	for _, rule := range rules {
		if code, ok := rule.Apply(f); ok {
			return code
		}
	}
	return attendance.StatusAbsent
}

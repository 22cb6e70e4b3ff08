package employee

import "time"

// RestDayConfig holds one boolean per weekday. Each weekday maps to exactly
// one flag; there is no ordering invariant beyond that.
type RestDayConfig struct {
	Sunday    bool
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
}

// IsRestDay reports the flag for a weekday.
func (c RestDayConfig) IsRestDay(weekday time.Weekday) bool {
	switch weekday {
	case time.Sunday:
		return c.Sunday
	case time.Monday:
		return c.Monday
	case time.Tuesday:
		return c.Tuesday
	case time.Wednesday:
		return c.Wednesday
	case time.Thursday:
		return c.Thursday
	case time.Friday:
		return c.Friday
	case time.Saturday:
		return c.Saturday
	}
	return false
}

// Employee is read-only to the attendance core; administrative collaborators
// own its lifecycle.
type Employee struct {
	ID         string
	CompanyID  string
	LocationID *string
	FullName   string
	IsActive   bool
	RestDays   RestDayConfig

	CreatedAt time.Time
	UpdatedAt time.Time
}

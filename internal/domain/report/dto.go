package report

import (
	"github.com/workpulse/attendance-backend-go/internal/pkg/validator"
)

type ReportFilter struct {
	From string `json:"from"`
	To   string `json:"to"`

	// Filled from JWT claims, not the request.
	CompanyID string `json:"-"`
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(f.From)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a valid date (YYYY-MM-DD)",
		})
	}
	to, okTo := validator.IsValidDate(f.To)
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a valid date (YYYY-MM-DD)",
		})
	}
	if okFrom && okTo && !validator.IsValidDateRange(from, to) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayCell is one cell of the attendance matrix.
type DayCell struct {
	Date string `json:"date"`
	Code string `json:"code"`
}

// EmployeeReport aggregates one employee over the report range.
type EmployeeReport struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`

	Present   int `json:"present"`
	Absent    int `json:"absent"`
	Leave     int `json:"leave"`
	HalfDay   int `json:"half_day"`
	WeeklyOff int `json:"weekly_off"`
	Holiday   int `json:"holiday"`

	// WorkingDays excludes weekly offs and holidays from the range.
	WorkingDays    int     `json:"working_days"`
	PresentPercent float64 `json:"present_percent"`
	WorkMinutes    int     `json:"work_minutes"`

	Days []DayCell `json:"days"`
}

// CompanyTotals sums the per-employee counters.
type CompanyTotals struct {
	Present   int `json:"present"`
	Absent    int `json:"absent"`
	Leave     int `json:"leave"`
	HalfDay   int `json:"half_day"`
	WeeklyOff int `json:"weekly_off"`
	Holiday   int `json:"holiday"`
}

type ReportResponse struct {
	From      string           `json:"from"`
	To        string           `json:"to"`
	TotalDays int              `json:"total_days"`
	Employees []EmployeeReport `json:"employees"`
	Totals    CompanyTotals    `json:"totals"`
}

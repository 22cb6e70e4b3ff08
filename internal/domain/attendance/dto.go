package attendance

import (
	"fmt"
	"time"

	"github.com/workpulse/attendance-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	Kind      string   `json:"kind"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Timezone  *string  `json:"timezone,omitempty"`

	// Filled from JWT claims, not the request body.
	EmployeeID string `json:"-"`
	CompanyID  string `json:"-"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if !SessionKind(r.Kind).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be ON_SITE or REMOTE",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	Kind          string  `json:"kind"`
	Timezone      string  `json:"timezone"`
	ClockInUTC    string  `json:"clock_in_utc"`
	ClockInLocal  string  `json:"clock_in_local"`
	ClockOutUTC   *string `json:"clock_out_utc,omitempty"`
	ClockOutLocal *string `json:"clock_out_local,omitempty"`
	WorkMinutes   *int    `json:"work_minutes,omitempty"`
}

type DayResolutionResponse struct {
	EmployeeID    string `json:"employee_id"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	WorkMinutes   int    `json:"work_minutes"`
	WorkHours     string `json:"work_hours"`
	StillAccruing bool   `json:"still_accruing"`
}

// FormatWorked renders a duration the way the dashboards expect, e.g. "8:30".
func FormatWorked(d time.Duration) string {
	mins := int(d.Minutes())
	return fmt.Sprintf("%d:%02d", mins/60, mins%60)
}

func NewDayResolutionResponse(r DayResolution) DayResolutionResponse {
	return DayResolutionResponse{
		EmployeeID:    r.EmployeeID,
		Date:          r.Date.Format("2006-01-02"),
		Status:        string(r.Code),
		WorkMinutes:   r.WorkMinutes(),
		WorkHours:     FormatWorked(r.Worked),
		StillAccruing: r.StillAccruing,
	}
}

type MyDaysFilter struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (f *MyDaysFilter) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(f.From); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a valid date (YYYY-MM-DD)",
		})
	}
	if _, ok := validator.IsValidDate(f.To); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

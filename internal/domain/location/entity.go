package location

import "time"

// Location carries a region's default timezone and scopes which holidays
// apply to an employee.
type Location struct {
	ID        string
	CompanyID string
	Region    string
	Timezone  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

package holiday

import "time"

// Holiday is created by administrative collaborators; the core only reads
// active holidays matching an employee's company, location and date.
type Holiday struct {
	ID         string
	CompanyID  string
	LocationID string
	Date       time.Time
	Name       string
	IsActive   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

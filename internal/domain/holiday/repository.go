package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// IsHoliday reports whether an active holiday exists for the company,
	// location and date. Employees without a location never match.
	IsHoliday(ctx context.Context, companyID string, locationID *string, day time.Time) (bool, error)

	// ListByRange returns a company's active holidays inside [from, to],
	// for calendar surfaces that want the raw list.
	ListByRange(ctx context.Context, companyID string, from, to time.Time) ([]Holiday, error)
}

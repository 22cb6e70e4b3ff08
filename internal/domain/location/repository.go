package location

import (
	"context"
	"errors"
)

var ErrLocationNotFound = errors.New("location not found")

type LocationRepository interface {
	GetByID(ctx context.Context, id string) (Location, error)

	// GetTimezoneByEmployeeID resolves an employee's location default zone.
	// Returns ErrLocationNotFound when the employee has no location; the
	// timezone resolver falls through to the system default in that case.
	GetTimezoneByEmployeeID(ctx context.Context, employeeID string) (string, error)
}

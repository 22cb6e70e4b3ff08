package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/attendance-backend-go/internal/domain/location"
	"github.com/workpulse/attendance-backend-go/internal/pkg/database"
)

type locationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepository{db: db}
}

// GetByID implements location.LocationRepository.
func (r *locationRepository) GetByID(ctx context.Context, id string) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, region, timezone, created_at, updated_at
		FROM locations
		WHERE id = $1
	`

	var l location.Location
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.CompanyID, &l.Region, &l.Timezone, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, fmt.Errorf("failed to get location: %w", err)
	}

	return l, nil
}

// GetTimezoneByEmployeeID implements location.LocationRepository.
func (r *locationRepository) GetTimezoneByEmployeeID(ctx context.Context, employeeID string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.timezone
		FROM employees e
		JOIN locations l ON l.id = e.location_id
		WHERE e.id = $1
	`

	var timezone string
	if err := q.QueryRow(ctx, query, employeeID).Scan(&timezone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", location.ErrLocationNotFound
		}
		return "", fmt.Errorf("failed to get timezone by employee ID: %w", err)
	}

	return timezone, nil
}

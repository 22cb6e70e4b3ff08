package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse/attendance-backend-go/internal/domain/holiday"
	"github.com/workpulse/attendance-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// IsHoliday implements holiday.HolidayRepository.
func (r *holidayRepository) IsHoliday(ctx context.Context, companyID string, locationID *string, day time.Time) (bool, error) {
	if locationID == nil {
		return false, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM holidays
			WHERE company_id = $1 AND location_id = $2 AND date = $3 AND is_active
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, companyID, *locationID, day).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}

	return exists, nil
}

// ListByRange implements holiday.HolidayRepository.
func (r *holidayRepository) ListByRange(ctx context.Context, companyID string, from, to time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, location_id, date, name, is_active, created_at, updated_at
		FROM holidays
		WHERE company_id = $1 AND date BETWEEN $2 AND $3 AND is_active
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.CompanyID, &h.LocationID, &h.Date, &h.Name, &h.IsActive, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

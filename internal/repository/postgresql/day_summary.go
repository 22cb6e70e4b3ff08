package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/pkg/database"
)

type daySummaryRepository struct {
	db *database.DB
}

func NewDaySummaryRepository(db *database.DB) attendance.DaySummaryRepository {
	return &daySummaryRepository{db: db}
}

// Upsert implements attendance.DaySummaryRepository. A summary is a derived
// snapshot, so last write wins; readers tolerate eventually-consistent rows
// but never torn ones.
func (r *daySummaryRepository) Upsert(ctx context.Context, summary attendance.DaySummary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO day_summaries (employee_id, company_id, date, status_code, work_minutes, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status_code = EXCLUDED.status_code,
		              work_minutes = EXCLUDED.work_minutes,
		              updated_at = now()
	`

	if _, err := q.Exec(ctx, query,
		summary.EmployeeID,
		summary.CompanyID,
		summary.Date,
		summary.Code,
		summary.WorkMinutes,
	); err != nil {
		return fmt.Errorf("failed to upsert day summary: %w", err)
	}

	return nil
}

// Get implements attendance.DaySummaryRepository.
func (r *daySummaryRepository) Get(ctx context.Context, employeeID string, day time.Time) (*attendance.DaySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, company_id, date, status_code, work_minutes, updated_at
		FROM day_summaries
		WHERE employee_id = $1 AND date = $2
	`

	var s attendance.DaySummary
	err := q.QueryRow(ctx, query, employeeID, day).Scan(
		&s.EmployeeID, &s.CompanyID, &s.Date, &s.Code, &s.WorkMinutes, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get day summary: %w", err)
	}

	return &s, nil
}

// ListByEmployeeAndRange implements attendance.DaySummaryRepository.
func (r *daySummaryRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.DaySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, company_id, date, status_code, work_minutes, updated_at
		FROM day_summaries
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list day summaries: %w", err)
	}
	defer rows.Close()

	var summaries []attendance.DaySummary
	for rows.Next() {
		var s attendance.DaySummary
		if err := rows.Scan(&s.EmployeeID, &s.CompanyID, &s.Date, &s.Code, &s.WorkMinutes, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan day summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

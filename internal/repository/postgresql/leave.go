package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/attendance-backend-go/internal/domain/leave"
	"github.com/workpulse/attendance-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// RecordFor implements leave.LeaveRepository.
func (r *leaveRepository) RecordFor(ctx context.Context, employeeID string, day time.Time) (*leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, kind, created_at
		FROM leave_records
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`

	var rec leave.LeaveRecord
	err := q.QueryRow(ctx, query, employeeID, day).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Kind, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get leave record: %w", err)
	}

	return &rec, nil
}

// ListByEmployeeAndRange implements leave.LeaveRepository.
func (r *leaveRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, kind, created_at
		FROM leave_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}
	defer rows.Close()

	var records []leave.LeaveRecord
	for rows.Next() {
		var rec leave.LeaveRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Kind, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

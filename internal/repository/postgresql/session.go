package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/pkg/database"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepository{db: db}
}

const sessionColumns = `
	id, employee_id, company_id, date, kind, timezone,
	clock_in, clock_out, clock_in_latitude, clock_in_longitude,
	created_at, updated_at
`

func scanSession(row pgx.Row) (attendance.Session, error) {
	var s attendance.Session
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.CompanyID, &s.Date, &s.Kind, &s.Timezone,
		&s.ClockIn, &s.ClockOut, &s.ClockInLatitude, &s.ClockInLongitude,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements attendance.SessionRepository. The guarded INSERT plus the
// partial unique index on (employee_id) WHERE clock_out IS NULL make the
// single-open-session check atomic: of two concurrent clock-ins exactly one
// row lands, the other maps to ErrAlreadyClockedIn.
func (r *sessionRepository) Create(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_sessions (
			id, employee_id, company_id, date, kind, timezone,
			clock_in, clock_in_latitude, clock_in_longitude
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9
		WHERE NOT EXISTS (
			SELECT 1 FROM attendance_sessions
			WHERE employee_id = $2 AND clock_out IS NULL
		)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		session.ID,
		session.EmployeeID,
		session.CompanyID,
		session.Date,
		session.Kind,
		session.Timezone,
		session.ClockIn,
		session.ClockInLatitude,
		session.ClockInLongitude,
	).Scan(&session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Session{}, attendance.ErrAlreadyClockedIn
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Session{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// CloseOpen implements attendance.SessionRepository.
func (r *sessionRepository) CloseOpen(ctx context.Context, employeeID string, clockOutUTC time.Time) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET clock_out = $2, updated_at = now()
		WHERE employee_id = $1 AND clock_out IS NULL
		RETURNING ` + sessionColumns

	session, err := scanSession(q.QueryRow(ctx, query, employeeID, clockOutUTC))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Session{}, attendance.ErrNoOpenSession
		}
		return attendance.Session{}, fmt.Errorf("failed to close open session: %w", err)
	}

	return session, nil
}

// GetOpen implements attendance.SessionRepository.
func (r *sessionRepository) GetOpen(ctx context.Context, employeeID string) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1 AND clock_out IS NULL
		LIMIT 1
	`

	session, err := scanSession(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Session{}, attendance.ErrNoOpenSession
		}
		return attendance.Session{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return session, nil
}

// CloseByID implements attendance.SessionRepository. The clock_out IS NULL
// predicate makes re-closing a no-op, which is what keeps the sweep
// idempotent.
func (r *sessionRepository) CloseByID(ctx context.Context, sessionID string, clockOutUTC time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET clock_out = $2, updated_at = now()
		WHERE id = $1 AND clock_out IS NULL
	`

	tag, err := q.Exec(ctx, query, sessionID, clockOutUTC)
	if err != nil {
		return fmt.Errorf("failed to close session %s: %w", sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrSessionNotFound
	}

	return nil
}

// ListByEmployeeAndDate implements attendance.SessionRepository.
func (r *sessionRepository) ListByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1 AND date = $2
		ORDER BY clock_in
	`

	rows, err := q.Query(ctx, query, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// ListOpenBefore implements attendance.SessionRepository.
func (r *sessionRepository) ListOpenBefore(ctx context.Context, day time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE clock_out IS NULL AND date < $1
		ORDER BY date, employee_id
	`

	rows, err := q.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

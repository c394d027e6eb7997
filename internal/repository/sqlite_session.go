package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tikk-app/tikk/internal/db"
	"github.com/tikk-app/tikk/internal/domain"
)

// timeLayout preserves sub-second precision through the TEXT columns so
// millisecond durations survive a round trip.
const timeLayout = time.RFC3339Nano

// SQLiteSessionRepo implements SessionRepo over a SQLite connection or
// transaction.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	span := s.Span0()
	query := `INSERT INTO sessions (id, description, category, duration_ms, timestamp, span_start, span_end)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Description,
		s.Category,
		s.Duration.Milliseconds(),
		s.Timestamp.Format(timeLayout),
		span.Start.Format(timeLayout),
		span.End.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT id, description, category, duration_ms, timestamp, span_start, span_end
		FROM sessions WHERE id = ?`
	return r.scanSession(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT id, description, category, duration_ms, timestamp, span_start, span_end
		FROM sessions ORDER BY timestamp DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	query := `UPDATE sessions SET description = ?, category = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, s.Description, s.Category, s.ID)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("clearing sessions: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting sessions: %w", err)
	}
	return n, nil
}

func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var durationMs int64
	var timestampStr, startStr, endStr string

	err := row.Scan(&s.ID, &s.Description, &s.Category, &durationMs, &timestampStr, &startStr, &endStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	return populateSession(&s, durationMs, timestampStr, startStr, endStr)
}

func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var durationMs int64
		var timestampStr, startStr, endStr string

		if err := rows.Scan(&s.ID, &s.Description, &s.Category, &durationMs, &timestampStr, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		session, err := populateSession(&s, durationMs, timestampStr, startStr, endStr)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills parsed fields after scanning raw column values.
func populateSession(s *domain.Session, durationMs int64, timestampStr, startStr, endStr string) (*domain.Session, error) {
	var err error
	s.Duration = time.Duration(durationMs) * time.Millisecond
	if s.Timestamp, err = time.Parse(timeLayout, timestampStr); err != nil {
		return nil, fmt.Errorf("parsing timestamp: %w", err)
	}
	span := domain.Span{}
	if span.Start, err = time.Parse(timeLayout, startStr); err != nil {
		return nil, fmt.Errorf("parsing span_start: %w", err)
	}
	if span.End, err = time.Parse(timeLayout, endStr); err != nil {
		return nil, fmt.Errorf("parsing span_end: %w", err)
	}
	span.Duration = s.Duration
	s.Spans = []domain.Span{span}
	return s, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tikk-app/tikk/internal/db"
	"github.com/tikk-app/tikk/internal/domain"
)

// SQLiteTimerRepo persists the single active timer row.
type SQLiteTimerRepo struct {
	db db.DBTX
}

// NewSQLiteTimerRepo creates a new SQLiteTimerRepo.
func NewSQLiteTimerRepo(conn db.DBTX) *SQLiteTimerRepo {
	return &SQLiteTimerRepo{db: conn}
}

// Get returns the stored timer, or an idle zero timer when no row
// exists yet.
func (r *SQLiteTimerRepo) Get(ctx context.Context) (*domain.Timer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT running, started_at, description, category FROM active_timer WHERE id = 1`)

	var t domain.Timer
	var running int
	var startedAt sql.NullString
	if err := row.Scan(&running, &startedAt, &t.Description, &t.Category); err != nil {
		if err == sql.ErrNoRows {
			return &domain.Timer{}, nil
		}
		return nil, fmt.Errorf("scanning active timer: %w", err)
	}

	t.Running = running != 0
	if startedAt.Valid && startedAt.String != "" {
		parsed, err := time.Parse(timeLayout, startedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing started_at: %w", err)
		}
		t.StartedAt = parsed
	}
	return &t, nil
}

func (r *SQLiteTimerRepo) Upsert(ctx context.Context, t *domain.Timer) error {
	var startedAt any
	if !t.StartedAt.IsZero() {
		startedAt = t.StartedAt.Format(timeLayout)
	}
	running := 0
	if t.Running {
		running = 1
	}
	query := `INSERT OR REPLACE INTO active_timer (id, running, started_at, description, category)
		VALUES (1, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, running, startedAt, t.Description, t.Category); err != nil {
		return fmt.Errorf("upserting active timer: %w", err)
	}
	return nil
}

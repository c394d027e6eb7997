package service

import (
	"context"
	"errors"
	"time"

	"github.com/tikk-app/tikk/internal/domain"
)

// SessionsPerPage is the log list page size.
const SessionsPerPage = 10

var (
	// ErrCategoryLimit is returned when adding to a full registry.
	ErrCategoryLimit = errors.New("category limit reached")
	// ErrEmptyName is returned when a category name is blank after trimming.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrTimerNotRunning is returned by stop-type operations on an idle timer.
	ErrTimerNotRunning = errors.New("timer is not running")
)

// SessionPage is one page of the session log, newest first.
type SessionPage struct {
	Sessions   []*domain.Session
	Page       int // clamped to [1, TotalPages]
	TotalPages int // at least 1
	Total      int
}

type SessionService interface {
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	Page(ctx context.Context, page int) (*SessionPage, error)
	Update(ctx context.Context, id, description, category string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Add(ctx context.Context, name string, icon domain.IconName) (*domain.Category, error)
	Rename(ctx context.Context, id, name string, icon domain.IconName) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	// EnsureSeed installs the default registry when no categories exist.
	EnsureSeed(ctx context.Context) error
}

// TimerService drives the single active timer and commits sessions
// when it stops. All mutations persist immediately so the timer
// survives process restarts.
type TimerService interface {
	Current(ctx context.Context) (*domain.Timer, error)
	Start(ctx context.Context, category string) (*domain.Timer, error)
	SetDescription(ctx context.Context, description string) error
	// SwitchCategory reassigns a running Uncategorized timer in place.
	SwitchCategory(ctx context.Context, category string) (bool, error)
	// Stop commits the running session and returns it.
	Stop(ctx context.Context, now time.Time) (*domain.Session, error)
	// Restart commits the running session and immediately starts a new
	// one in the given category, atomically.
	Restart(ctx context.Context, category string, now time.Time) (*domain.Session, error)
	// Resume starts a timer pre-seeded from a past session, committing
	// any running session first.
	Resume(ctx context.Context, sessionID string, now time.Time) (*domain.Session, error)
}

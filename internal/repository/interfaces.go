package repository

import (
	"context"
	"errors"

	"github.com/tikk-app/tikk/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// List returns all sessions, newest commit first.
	List(ctx context.Context) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	// List returns categories in registry (insertion) order.
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

// TimerRepo persists the single in-flight timer so start/stop work
// across CLI invocations as well as inside the TUI.
type TimerRepo interface {
	Get(ctx context.Context) (*domain.Timer, error)
	Upsert(ctx context.Context, t *domain.Timer) error
}

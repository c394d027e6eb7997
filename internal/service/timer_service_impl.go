package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tikk-app/tikk/internal/db"
	"github.com/tikk-app/tikk/internal/domain"
	"github.com/tikk-app/tikk/internal/repository"
)

type timerService struct {
	timers repository.TimerRepo
	uow    db.UnitOfWork
	now    func() time.Time
}

func NewTimerService(timers repository.TimerRepo, uow db.UnitOfWork) TimerService {
	return &timerService{timers: timers, uow: uow, now: time.Now}
}

func (s *timerService) Current(ctx context.Context) (*domain.Timer, error) {
	return s.timers.Get(ctx)
}

func (s *timerService) Start(ctx context.Context, category string) (*domain.Timer, error) {
	t, err := s.timers.Get(ctx)
	if err != nil {
		return nil, err
	}
	t.Start(category, s.now())
	if err := s.timers.Upsert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *timerService) SetDescription(ctx context.Context, description string) error {
	t, err := s.timers.Get(ctx)
	if err != nil {
		return err
	}
	t.Description = description
	return s.timers.Upsert(ctx, t)
}

func (s *timerService) SwitchCategory(ctx context.Context, category string) (bool, error) {
	t, err := s.timers.Get(ctx)
	if err != nil {
		return false, err
	}
	if !t.SwitchCategory(category) {
		return false, nil
	}
	return true, s.timers.Upsert(ctx, t)
}

// commitTx stops the timer held in tx-scoped storage and writes the
// finished session in the same transaction. Returns ErrTimerNotRunning
// on an idle timer.
func commitTx(ctx context.Context, tx db.DBTX, now time.Time) (*domain.Session, error) {
	txTimers := repository.NewSQLiteTimerRepo(tx)
	txSessions := repository.NewSQLiteSessionRepo(tx)

	t, err := txTimers.Get(ctx)
	if err != nil {
		return nil, err
	}
	description, category := t.Description, t.Category
	span, ok := t.Stop(now)
	if !ok {
		return nil, ErrTimerNotRunning
	}

	session := domain.NewSession(uuid.New().String(), description, category, span.Start, span.End)
	if err := txSessions.Create(ctx, session); err != nil {
		return nil, err
	}
	if err := txTimers.Upsert(ctx, t); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *timerService) Stop(ctx context.Context, now time.Time) (*domain.Session, error) {
	var committed *domain.Session
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		session, err := commitTx(ctx, tx, now)
		if err != nil {
			return err
		}
		committed = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return committed, nil
}

func (s *timerService) Restart(ctx context.Context, category string, now time.Time) (*domain.Session, error) {
	var committed *domain.Session
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		session, err := commitTx(ctx, tx, now)
		if err != nil {
			return err
		}
		committed = session

		txTimers := repository.NewSQLiteTimerRepo(tx)
		t, err := txTimers.Get(ctx)
		if err != nil {
			return err
		}
		t.Start(category, now)
		return txTimers.Upsert(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return committed, nil
}

func (s *timerService) Resume(ctx context.Context, sessionID string, now time.Time) (*domain.Session, error) {
	var committed *domain.Session
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTimers := repository.NewSQLiteTimerRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)

		source, err := txSessions.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}

		t, err := txTimers.Get(ctx)
		if err != nil {
			return err
		}
		if t.Running {
			session, err := commitTx(ctx, tx, now)
			if err != nil {
				return err
			}
			committed = session
			if t, err = txTimers.Get(ctx); err != nil {
				return err
			}
		}

		t.Resume(source, now)
		return txTimers.Upsert(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return committed, nil
}

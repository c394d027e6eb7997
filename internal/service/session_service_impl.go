package service

import (
	"context"

	"github.com/tikk-app/tikk/internal/domain"
	"github.com/tikk-app/tikk/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
}

func NewSessionService(sessions repository.SessionRepo) SessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) List(ctx context.Context) ([]*domain.Session, error) {
	return s.sessions.List(ctx)
}

// Page slices the newest-first log into fixed-size pages. An
// out-of-range page is clamped rather than rejected, so a delete that
// empties the last page lands the caller on the new final page.
func (s *sessionService) Page(ctx context.Context, page int) (*SessionPage, error) {
	all, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}

	total := len(all)
	totalPages := (total + SessionsPerPage - 1) / SessionsPerPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * SessionsPerPage
	end := start + SessionsPerPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &SessionPage{
		Sessions:   all[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

func (s *sessionService) Update(ctx context.Context, id, description, category string) (*domain.Session, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Edit(description, category)
	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

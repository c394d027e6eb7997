package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tikk-app/tikk/internal/domain"
	"github.com/tikk-app/tikk/internal/repository"
)

type categoryService struct {
	categories repository.CategoryRepo
}

func NewCategoryService(categories repository.CategoryRepo) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *categoryService) Add(ctx context.Context, name string, icon domain.IconName) (*domain.Category, error) {
	c := domain.NewCategory(uuid.New().String(), name, icon)
	if c == nil {
		return nil, ErrEmptyName
	}

	n, err := s.categories.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n >= domain.MaxCategories {
		return nil, fmt.Errorf("registry holds %d categories: %w", n, ErrCategoryLimit)
	}

	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Rename updates name and icon. Sessions referencing the old name keep
// it; category references are snapshots, not foreign keys.
func (s *categoryService) Rename(ctx context.Context, id, name string, icon domain.IconName) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = name
	if icon != "" {
		c.Icon = icon
	}
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

func (s *categoryService) EnsureSeed(ctx context.Context) error {
	n, err := s.categories.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, seed := range domain.DefaultCategories {
		c := domain.NewCategory(uuid.New().String(), seed.Name, seed.Icon)
		if err := s.categories.Create(ctx, c); err != nil {
			return fmt.Errorf("seeding category %q: %w", seed.Name, err)
		}
	}
	return nil
}

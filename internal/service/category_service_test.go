package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tikk-app/tikk/internal/domain"
)

func TestEnsureSeed_InstallsDefaultsOnce(t *testing.T) {
	_, catRepo, _, _ := setupRepos(t)
	svc := NewCategoryService(catRepo)
	ctx := context.Background()

	require.NoError(t, svc.EnsureSeed(ctx))
	cats, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, cats, len(domain.DefaultCategories))
	assert.Equal(t, "GRE Prep", cats[0].Name)
	assert.Equal(t, domain.IconBook, cats[0].Icon)

	// A second call must not duplicate the registry.
	require.NoError(t, svc.EnsureSeed(ctx))
	cats, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, len(domain.DefaultCategories))
}

func TestEnsureSeed_SkipsNonEmptyRegistry(t *testing.T) {
	_, catRepo, _, _ := setupRepos(t)
	svc := NewCategoryService(catRepo)
	ctx := context.Background()

	_, err := svc.Add(ctx, "Solo", domain.IconLightbulb)
	require.NoError(t, err)

	require.NoError(t, svc.EnsureSeed(ctx))
	cats, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Solo", cats[0].Name)
}

func TestAdd_TrimsAndRejectsBlank(t *testing.T) {
	_, catRepo, _, _ := setupRepos(t)
	svc := NewCategoryService(catRepo)
	ctx := context.Background()

	c, err := svc.Add(ctx, "  Reading  ", domain.IconBook)
	require.NoError(t, err)
	assert.Equal(t, "Reading", c.Name)

	_, err = svc.Add(ctx, "   ", domain.IconBook)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestAdd_RejectedAtLimit(t *testing.T) {
	_, catRepo, _, _ := setupRepos(t)
	svc := NewCategoryService(catRepo)
	ctx := context.Background()

	for i := 0; i < domain.MaxCategories; i++ {
		_, err := svc.Add(ctx, fmt.Sprintf("Category %d", i), domain.IconLightbulb)
		require.NoError(t, err)
	}

	_, err := svc.Add(ctx, "One Too Many", domain.IconLightbulb)
	assert.ErrorIs(t, err, ErrCategoryLimit)

	cats, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, domain.MaxCategories)
}

func TestRename_UpdatesNameAndIcon(t *testing.T) {
	_, catRepo, _, _ := setupRepos(t)
	svc := NewCategoryService(catRepo)
	ctx := context.Background()

	c, err := svc.Add(ctx, "Work", domain.IconBriefcase)
	require.NoError(t, err)

	renamed, err := svc.Rename(ctx, c.ID, "  Deep Work ", domain.IconPen)
	require.NoError(t, err)
	assert.Equal(t, "Deep Work", renamed.Name)
	assert.Equal(t, domain.IconPen, renamed.Icon)

	_, err = svc.Rename(ctx, c.ID, "  ", domain.IconPen)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestDelete_LeavesSessionCategoriesIntact(t *testing.T) {
	sessRepo, catRepo, _, _ := setupRepos(t)
	catSvc := NewCategoryService(catRepo)
	sessSvc := NewSessionService(sessRepo)
	ctx := context.Background()

	c, err := catSvc.Add(ctx, "Health", domain.IconHeart)
	require.NoError(t, err)

	seedSessions(t, sessRepo, 1)
	all, err := sessSvc.List(ctx)
	require.NoError(t, err)
	_, err = sessSvc.Update(ctx, all[0].ID, "run", "Health")
	require.NoError(t, err)

	require.NoError(t, catSvc.Delete(ctx, c.ID))

	got, err := sessSvc.GetByID(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Health", got.Category, "sessions keep the denormalized name")
}

package service

import (
	"testing"

	"github.com/tikk-app/tikk/internal/db"
	"github.com/tikk-app/tikk/internal/repository"
	"github.com/tikk-app/tikk/internal/testutil"
)

func setupRepos(t *testing.T) (*repository.SQLiteSessionRepo, *repository.SQLiteCategoryRepo, *repository.SQLiteTimerRepo, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteCategoryRepo(database),
		repository.NewSQLiteTimerRepo(database),
		testutil.NewTestUoW(database)
}

// Package snapshot moves the whole store through a portable JSON
// document, for backups and for migrating data between machines.
package snapshot

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/tikk-app/tikk/internal/db"
	"github.com/tikk-app/tikk/internal/domain"
	"github.com/tikk-app/tikk/internal/repository"
	"go.uber.org/zap"
)

// Export writes the full store to w.
func Export(ctx context.Context, sessions repository.SessionRepo, categories repository.CategoryRepo, w io.Writer) error {
	allSessions, err := sessions.List(ctx)
	if err != nil {
		return err
	}
	allCategories, err := categories.List(ctx)
	if err != nil {
		return err
	}
	return Encode(w, Build(allSessions, allCategories))
}

// DecodeOrFallback reads a snapshot from r. Unparseable input does not
// abort the import: it degrades to an empty log and the default
// category registry, matching first-run state.
func DecodeOrFallback(r io.Reader, logger *zap.Logger) *Snapshot {
	snap, err := Decode(r)
	if err != nil {
		logger.Warn("snapshot unreadable, falling back to defaults", zap.Error(err))
		fallback := &Snapshot{Logs: []LogEntry{}}
		for _, seed := range domain.DefaultCategories {
			fallback.Categories = append(fallback.Categories, CategoryEntry{
				ID:   wireID(uuid.New().String()),
				Name: seed.Name,
				Icon: string(seed.Icon),
			})
		}
		return fallback
	}
	return snap
}

// Restore replaces the entire store with the snapshot's contents in a
// single transaction.
func Restore(ctx context.Context, uow db.UnitOfWork, snap *Snapshot) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txCategories := repository.NewSQLiteCategoryRepo(tx)

		if err := txSessions.DeleteAll(ctx); err != nil {
			return err
		}
		if err := txCategories.DeleteAll(ctx); err != nil {
			return err
		}
		for _, s := range snap.Sessions() {
			if err := txSessions.Create(ctx, s); err != nil {
				return err
			}
		}
		for _, c := range snap.DomainCategories() {
			if err := txCategories.Create(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
}

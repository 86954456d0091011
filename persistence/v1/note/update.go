package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ribgsilva/simple-notes/sys"
)

// Update replaces title and content of a note and refreshes updated_at.
// updated_at always moves forward, even when the clock did not.
func Update(ctx context.Context, id uint64, upd UpdateNote) (Note, error) {
	if !inRange(id) {
		return Note{}, ErrNotFound
	}
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	tx, err := db.BeginTx(dbCtx, nil)
	if err != nil {
		return Note{}, fmt.Errorf("failed to begin update tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	current, err := scanNote(tx.QueryRowContext(dbCtx, selectColumns+" WHERE id = ?", id))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, ErrNotFound
	case err != nil:
		return Note{}, fmt.Errorf("failed to query note for update: %w", err)
	}

	n := timestamp()
	if !n.After(current.UpdatedAt) {
		n = current.UpdatedAt.Add(time.Microsecond)
	}

	if _, err := tx.ExecContext(dbCtx, "UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?",
		upd.Title, upd.Content, formatTime(n), id); err != nil {
		return Note{}, fmt.Errorf("failed to exec update stmt: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Note{}, fmt.Errorf("failed to commit update tx: %w", err)
	}

	updated := Note{
		Id:        id,
		Title:     upd.Title,
		Content:   upd.Content,
		CreatedAt: current.CreatedAt,
		UpdatedAt: n,
	}
	toCache(ctx, updated)
	return updated, nil
}

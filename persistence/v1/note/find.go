package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ribgsilva/simple-notes/sys"
)

// Find reads a note by id, going through the cache first when one is configured
func Find(ctx context.Context, id uint64) (Note, error) {
	if !inRange(id) {
		return Note{}, ErrNotFound
	}
	switch n, state := fromCache(ctx, id); state {
	case hit:
		return n, nil
	case gone:
		return Note{}, ErrNotFound
	}

	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, selectColumns+" WHERE id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	n, err := scanNote(stmt.QueryRowContext(dbCtx, id))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, ErrNotFound
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	}

	toCache(ctx, n)
	return n, nil
}

package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/simple-notes/sys"
)

// Delete removes a note, returning ErrNotFound when there was nothing to remove
func Delete(ctx context.Context, id uint64) error {
	if !inRange(id) {
		return ErrNotFound
	}
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	res, err := db.ExecContext(dbCtx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read deleted rows: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}
	forget(ctx, id)
	return nil
}

package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/simple-notes/sys"
)

// Insert stores a new note, the database assigns its id
func Insert(ctx context.Context, newN NewNote) (Note, error) {
	db := sys.R.Database

	n := timestamp()

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "INSERT INTO notes (title, content, created_at, updated_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(dbCtx, newN.Title, newN.Content, formatTime(n), formatTime(n))
	if err != nil {
		return Note{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Note{}, fmt.Errorf("failed to read inserted id: %w", err)
	}

	return Note{
		Id:        uint64(id),
		Title:     newN.Title,
		Content:   newN.Content,
		CreatedAt: n,
		UpdatedAt: n,
	}, nil
}

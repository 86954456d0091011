package note

import (
	"context"
	"errors"
	"strings"

	"github.com/ribgsilva/simple-notes/persistence/v1/note"
)

// Update validates the payload and replaces title and content of an existing note
func Update(ctx context.Context, id uint64, upd UpdateNote) (Note, error) {
	upd.Title = strings.TrimSpace(upd.Title)
	if err := check(upd); err != nil {
		return Note{}, err
	}

	updated, err := note.Update(ctx, id, note.UpdateNote{Title: upd.Title, Content: *upd.Content})
	if err != nil {
		if errors.Is(err, note.ErrNotFound) {
			return Note{}, ErrNotFound
		}
		return Note{}, err
	}
	return Note(updated), nil
}

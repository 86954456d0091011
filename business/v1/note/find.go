package note

import (
	"context"
	"errors"

	"github.com/ribgsilva/simple-notes/persistence/v1/note"
)

func Find(ctx context.Context, id uint64) (Note, error) {
	find, err := note.Find(ctx, id)
	if err != nil {
		if errors.Is(err, note.ErrNotFound) {
			return Note{}, ErrNotFound
		}
		return Note{}, err
	}
	return Note(find), nil
}

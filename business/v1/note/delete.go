package note

import (
	"context"
	"errors"

	"github.com/ribgsilva/simple-notes/persistence/v1/note"
)

func Delete(ctx context.Context, id uint64) error {
	if err := note.Delete(ctx, id); err != nil {
		if errors.Is(err, note.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

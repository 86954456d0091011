package note

import (
	"context"

	"github.com/ribgsilva/simple-notes/persistence/v1/note"
)

// List returns all notes, most recently updated first. It never returns a nil slice.
func List(ctx context.Context) ([]Note, error) {
	found, err := note.List(ctx)
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(found))
	for _, n := range found {
		notes = append(notes, Note(n))
	}
	return notes, nil
}

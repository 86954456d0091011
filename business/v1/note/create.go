package note

import (
	"context"
	"strings"

	"github.com/ribgsilva/simple-notes/persistence/v1/note"
)

// Create validates and stores a new note. The title is stored trimmed.
func Create(ctx context.Context, newN NewNote) (Note, error) {
	newN.Title = strings.TrimSpace(newN.Title)
	if err := check(newN); err != nil {
		return Note{}, err
	}

	created, err := note.Insert(ctx, note.NewNote{Title: newN.Title, Content: *newN.Content})
	if err != nil {
		return Note{}, err
	}
	return Note(created), nil
}

package note

import "fmt"

const selectColumns = "SELECT id, title, content, created_at, updated_at FROM notes"

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (Note, error) {
	var (
		n                  Note
		created, updated string
	)
	if err := s.Scan(&n.Id, &n.Title, &n.Content, &created, &updated); err != nil {
		return Note{}, err
	}

	var err error
	if n.CreatedAt, err = parseTime(created); err != nil {
		return Note{}, fmt.Errorf("error parsing created_at of note %d: %w", n.Id, err)
	}
	if n.UpdatedAt, err = parseTime(updated); err != nil {
		return Note{}, fmt.Errorf("error parsing updated_at of note %d: %w", n.Id, err)
	}
	return n, nil
}

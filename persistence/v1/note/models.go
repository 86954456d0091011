package note

import (
	"errors"
	"time"
)

const noteKey = "notes.%d"

// timeLayout is fixed width so that text ordering matches chronological ordering
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// ErrNotFound is returned when no row matches the given id
var ErrNotFound = errors.New("note not found")

// now is replaced in tests to control timestamps
var now = time.Now

type Note struct {
	Id        uint64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewNote struct {
	Title   string
	Content string
}

type UpdateNote struct {
	Title   string
	Content string
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		// rows written by other tools may carry any RFC 3339 precision
		t, err = time.Parse(time.RFC3339Nano, s)
	}
	return t.UTC(), err
}

func timestamp() time.Time {
	return now().UTC().Truncate(time.Microsecond)
}

package note

import "time"

type Note struct {
	Id        uint64    `json:"id" example:"1"`
	Title     string    `json:"title" example:"my note"`
	Content   string    `json:"content" example:"my note content"`
	CreatedAt time.Time `json:"created_at" example:"2006-01-02T15:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2006-01-02T15:04:05Z"`
}

// NewNote is the payload to create a note. Content is a pointer so a missing field can be told
// apart from an empty one.
type NewNote struct {
	Title   string  `json:"title" validate:"required,max=200" example:"my note"`
	Content *string `json:"content" validate:"required" example:"my note content"`
}

// UpdateNote is the payload to replace the title and content of a note
type UpdateNote struct {
	Title   string  `json:"title" validate:"required,max=200" example:"my note"`
	Content *string `json:"content" validate:"required" example:"my note content"`
}

// Event is a note change received from the messaging topic
type Event struct {
	Type string `json:"type"`
	Id   uint64 `json:"id,omitempty"`
	Data any    `json:"data,omitempty"`
}

const (
	EventCreate = "create"
	EventUpdate = "update"
	EventDelete = "delete"
)

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Music is the catalog entry listed by the demo table.
type Music struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Name       string    `json:"name"`
	Artist     string    `json:"artist"`
	Genre      string    `json:"genre"`
	Plays      int64     `json:"plays"`
	ReleasedAt time.Time `json:"released_at"`

	// Note is Markdown, rendered by the table's markdown column.
	Note string `json:"note"`
}

// Genres are the selectable genre filter choices.
var Genres = []string{"pop", "rock", "jazz", "classical", "electronic"}

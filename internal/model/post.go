package model

import (
	"time"
)

type Post struct {
	ID        string    `db:"id" json:"id"`
	AuthorID  string    `db:"author_id" json:"author"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	ImageKey  *string   `db:"image_key" json:"-"` // Storage reference, nullable across schema revisions
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	// Computed at read time from ImageKey (not in database)
	ImageURL string `db:"-" json:"imageUrl,omitempty"`
}

// SearchResult is the trimmed shape returned by post search.
type SearchResult struct {
	ID      string `db:"id" json:"id"`
	Title   string `db:"title" json:"title"`
	Content string `db:"content" json:"content"`
}

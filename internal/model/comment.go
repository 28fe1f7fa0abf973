package model

import (
	"time"
)

type Comment struct {
	ID       string `db:"id" json:"id"`
	PostID   string `db:"post_id" json:"postId"`
	AuthorID string `db:"author_id" json:"author"`
	// AuthorName is snapshotted from the identity at creation time and is
	// intentionally not re-synced when the user later renames.
	AuthorName string    `db:"author_name" json:"authorName"`
	Content    string    `db:"content" json:"content"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

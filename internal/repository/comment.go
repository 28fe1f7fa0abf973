package repository

import (
	"github.com/inkpost/inkpost/internal/model"
	"github.com/jmoiron/sqlx"
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	ByPostID(postID string) ([]*model.Comment, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	query := `INSERT INTO comments (id, post_id, author_id, author_name, content, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		comment.ID,
		comment.PostID,
		comment.AuthorID,
		comment.AuthorName,
		comment.Content,
		comment.CreatedAt,
	)

	return err
}

// ByPostID returns the comments for a post, newest first. A post with no
// comments yields an empty slice, not an error.
func (r *commentRepository) ByPostID(postID string) ([]*model.Comment, error) {
	comments := []*model.Comment{}
	query := `SELECT * FROM comments WHERE post_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&comments, query, postID)
	if err != nil {
		return nil, err
	}

	return comments, nil
}

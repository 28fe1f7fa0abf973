package repository

import (
	"database/sql"
	"errors"

	"github.com/inkpost/inkpost/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrPostNotFound = errors.New("post not found")
)

type PostRepository interface {
	Create(post *model.Post) error
	ByID(id string) (*model.Post, error)
	Posts() ([]*model.Post, error)
	SearchTitle(query string, limit int) ([]*model.SearchResult, error)
	SearchContent(query string, limit int) ([]*model.SearchResult, error)
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	query := `INSERT INTO posts (id, author_id, title, content, image_key, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		post.ID,
		post.AuthorID,
		post.Title,
		post.Content,
		post.ImageKey,
		post.CreatedAt,
		post.UpdatedAt,
	)

	return err
}

func (r *postRepository) ByID(id string) (*model.Post, error) {
	post := &model.Post{}
	query := `SELECT * FROM posts WHERE id = $1`

	err := r.db.Get(post, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrPostNotFound
	}

	return post, err
}

func (r *postRepository) Posts() ([]*model.Post, error) {
	var posts []*model.Post
	query := `SELECT * FROM posts ORDER BY created_at DESC`

	err := r.db.Select(&posts, query)
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepository) SearchTitle(query string, limit int) ([]*model.SearchResult, error) {
	return r.search(`SELECT id, title, content FROM posts
	                 WHERE LOWER(title) LIKE '%' || LOWER($1) || '%'
	                 ORDER BY created_at DESC LIMIT $2`, query, limit)
}

func (r *postRepository) SearchContent(query string, limit int) ([]*model.SearchResult, error) {
	return r.search(`SELECT id, title, content FROM posts
	                 WHERE LOWER(content) LIKE '%' || LOWER($1) || '%'
	                 ORDER BY created_at DESC LIMIT $2`, query, limit)
}

func (r *postRepository) search(query, term string, limit int) ([]*model.SearchResult, error) {
	var results []*model.SearchResult

	err := r.db.Select(&results, query, term, limit)
	if err != nil {
		return nil, err
	}

	return results, nil
}

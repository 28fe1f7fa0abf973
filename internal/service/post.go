package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inkpost/inkpost/internal/apperr"
	"github.com/inkpost/inkpost/internal/model"
	"github.com/inkpost/inkpost/internal/repository"
	"github.com/inkpost/inkpost/internal/storage"
)

const DefaultSearchLimit = 5

// UploadTicket pairs a storage key with the short-lived URL the caller
// PUTs the raw bytes to. The key is later passed into Create.
type UploadTicket struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type PostService struct {
	repo     repository.PostRepository
	storage  storage.Storage
	uploader Uploader
}

func NewPostService(repo repository.PostRepository, storage storage.Storage, uploader Uploader) *PostService {
	return &PostService{
		repo:     repo,
		storage:  storage,
		uploader: uploader,
	}
}

// Create persists a new post with the author bound to the authenticated
// identity. The author is set exactly once here and never editable.
func (s *PostService) Create(identity *model.User, title, content string, imageKey *string) (*model.Post, error) {
	if identity == nil {
		return nil, apperr.New(apperr.CodeUnauthenticated, "You must be logged in to post")
	}

	now := time.Now()
	post := &model.Post{
		ID:        uuid.New().String(),
		AuthorID:  identity.ID,
		Title:     title,
		Content:   content,
		ImageKey:  imageKey,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Create(post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// GenerateUploadURL issues a direct-upload ticket for a post image.
func (s *PostService) GenerateUploadURL(identity *model.User, filename string) (*UploadTicket, error) {
	if identity == nil {
		return nil, apperr.New(apperr.CodeUnauthenticated, "You must be logged in to upload")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("posts/%s%s", uuid.New().String(), ext)

	url, err := s.storage.PresignUpload(key)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload URL: %w", err)
	}

	return &UploadTicket{Key: key, URL: url}, nil
}

// CreateWithImage runs the two-phase flow: obtain upload URL, PUT the
// bytes, then create the record referencing the uploaded object. A failed
// upload aborts before the record exists, so no orphaned post is left
// behind. A failed record creation after a successful upload leaves an
// unreferenced blob; nothing compensates for that.
func (s *PostService) CreateWithImage(ctx context.Context, identity *model.User, title, content string, image io.Reader, filename string, size int64) (*model.Post, error) {
	if identity == nil {
		return nil, apperr.New(apperr.CodeUnauthenticated, "You must be logged in to post")
	}

	ticket, err := s.GenerateUploadURL(identity, filename)
	if err != nil {
		return nil, err
	}

	err = s.uploader.Put(ctx, ticket.URL, image, size)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeUploadFailure, "Failed to upload image", err)
	}

	return s.Create(identity, title, content, &ticket.Key)
}

// Posts returns all posts newest first with image URLs resolved.
// No pagination: callers fetch the whole set.
func (s *PostService) Posts() ([]*model.Post, error) {
	posts, err := s.repo.Posts()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	for _, post := range posts {
		s.resolveImageURL(post)
	}

	return posts, nil
}

func (s *PostService) ByID(id string) (*model.Post, error) {
	post, err := s.repo.ByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, apperr.New(apperr.CodeNotFound, "Post not found")
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	s.resolveImageURL(post)
	return post, nil
}

// Search returns up to limit unique posts matching query, title matches
// taking priority over content matches. A post matching both appears once.
func (s *PostService) Search(query string, limit int) ([]*model.SearchResult, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	titleMatches, err := s.repo.SearchTitle(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search titles: %w", err)
	}

	results := make([]*model.SearchResult, 0, limit)
	seen := make(map[string]bool, limit)
	for _, match := range titleMatches {
		if len(results) >= limit {
			return results, nil
		}
		results = append(results, match)
		seen[match.ID] = true
	}

	contentMatches, err := s.repo.SearchContent(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search content: %w", err)
	}

	for _, match := range contentMatches {
		if len(results) >= limit {
			break
		}
		if seen[match.ID] {
			continue
		}
		results = append(results, match)
		seen[match.ID] = true
	}

	return results, nil
}

// resolveImageURL fills in a presigned read URL when the post has an
// image. Resolution failures are logged and leave the URL empty rather
// than failing the read.
func (s *PostService) resolveImageURL(post *model.Post) {
	if post.ImageKey == nil || *post.ImageKey == "" {
		return
	}

	url, err := s.storage.ReadURL(*post.ImageKey)
	if err != nil {
		slog.Error("failed to resolve image URL", "error", err, "post_id", post.ID, "key", *post.ImageKey)
		return
	}

	post.ImageURL = url
}

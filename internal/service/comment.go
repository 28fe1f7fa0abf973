package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inkpost/inkpost/internal/apperr"
	"github.com/inkpost/inkpost/internal/model"
	"github.com/inkpost/inkpost/internal/repository"
)

type CommentService struct {
	repo     repository.CommentRepository
	postRepo repository.PostRepository
}

func NewCommentService(repo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		repo:     repo,
		postRepo: postRepo,
	}
}

// Create persists a comment for the authenticated identity. Content is
// trimmed of surrounding whitespace; empty-after-trim is rejected. The
// author name is snapshotted at creation time.
func (s *CommentService) Create(identity *model.User, postID, content string) (*model.Comment, error) {
	if identity == nil {
		return nil, apperr.New(apperr.CodeUnauthenticated, "You must be logged in to comment")
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, apperr.New(apperr.CodeInvalidInput, "Comment content cannot be empty")
	}

	// Every comment must reference an existing post
	_, err := s.postRepo.ByID(postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, apperr.New(apperr.CodeNotFound, "Post not found")
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	comment := &model.Comment{
		ID:         uuid.New().String(),
		PostID:     postID,
		AuthorID:   identity.ID,
		AuthorName: identity.Name,
		Content:    trimmed,
		CreatedAt:  time.Now(),
	}

	err = s.repo.Create(comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// ByPostID returns the comments for a post, newest first.
func (s *CommentService) ByPostID(postID string) ([]*model.Comment, error) {
	comments, err := s.repo.ByPostID(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

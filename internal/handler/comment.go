package handler

import (
	"log/slog"
	"net/http"

	"github.com/inkpost/inkpost/internal/ctxkeys"
	"github.com/inkpost/inkpost/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	postID := r.PathValue("id")

	var req createCommentRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondInvalid(w, "Invalid request body")
		return
	}

	err = validate.Struct(req)
	if err != nil {
		respondInvalid(w, validationMessage(err))
		return
	}

	comment, err := h.commentService.Create(user, postID, req.Content)
	if err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("comment created", "comment_id", comment.ID, "post_id", postID, "author_id", comment.AuthorID)
	respondSuccess(w)
}

// ListByPost returns the comments for a post, newest first. A post with
// no comments yields an empty array.
func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.ByPostID(r.PathValue("id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, comments)
}

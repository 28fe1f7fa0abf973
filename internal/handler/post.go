package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/inkpost/inkpost/internal/ctxkeys"
	"github.com/inkpost/inkpost/internal/model"
	"github.com/inkpost/inkpost/internal/service"
	"github.com/inkpost/inkpost/internal/validation"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// List returns all posts newest first, image URLs resolved.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.Posts()
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.postService.ByID(r.PathValue("id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondJSON(w, http.StatusOK, []*model.SearchResult{})
		return
	}

	limit := service.DefaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 50 {
			respondInvalid(w, "limit must be between 1 and 50")
			return
		}
		limit = parsed
	}

	results, err := h.postService.Search(query, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, results)
}

// UploadURL issues a presigned direct-upload ticket for a post image.
func (h *PostHandler) UploadURL(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req uploadURLRequest
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

	ticket, err := h.postService.GenerateUploadURL(user, req.Filename)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, ticket)
}

// Create handles both payload shapes: multipart form submissions carrying
// the image bytes, and JSON bodies referencing an already-uploaded key.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		h.createMultipart(w, r)
		return
	}

	user := ctxkeys.User(r.Context())

	var req createPostRequest
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

	var imageKey *string
	if req.ImageKey != "" {
		imageKey = &req.ImageKey
	}

	post, err := h.postService.Create(user, req.Title, req.Content, imageKey)
	if err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("post created", "post_id", post.ID, "author_id", post.AuthorID)
	respondJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) createMultipart(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	// Slightly above the image cap so oversized uploads still parse far
	// enough to be rejected with a real message
	err := r.ParseMultipartForm(4 << 20)
	if err != nil {
		respondInvalid(w, "Invalid form data")
		return
	}

	req := createPostRequest{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}
	err = validate.Struct(req)
	if err != nil {
		respondInvalid(w, validationMessage(err))
		return
	}

	headers := r.MultipartForm.File["image"]
	if len(headers) == 0 {
		post, err := h.postService.Create(user, req.Title, req.Content, nil)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, post)
		return
	}

	header := headers[0]

	// Image validation runs before any upload URL is requested
	err = validation.ImageHeader(header)
	if err != nil {
		respondInvalid(w, err.Error())
		return
	}

	file, err := header.Open()
	if err != nil {
		respondInvalid(w, "Failed to read image")
		return
	}
	defer func() { _ = file.Close() }()

	post, err := h.postService.CreateWithImage(r.Context(), user, req.Title, req.Content, file, header.Filename, header.Size)
	if err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("post created", "post_id", post.ID, "author_id", post.AuthorID, "image_key", *post.ImageKey)
	respondJSON(w, http.StatusCreated, post)
}

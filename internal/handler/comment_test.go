package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inkpost/inkpost/internal/model"
	"github.com/inkpost/inkpost/internal/service"
)

type memCommentRepo struct {
	comments []*model.Comment
}

func (r *memCommentRepo) Create(comment *model.Comment) error {
	// Prepend: newest first, matching the real repository's ordering
	r.comments = append([]*model.Comment{comment}, r.comments...)
	return nil
}

func (r *memCommentRepo) ByPostID(postID string) ([]*model.Comment, error) {
	matched := []*model.Comment{}
	for _, c := range r.comments {
		if c.PostID == postID {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func newCommentHandler(postIDs ...string) (*CommentHandler, *memCommentRepo) {
	postRepo := &memPostRepo{}
	for _, id := range postIDs {
		postRepo.posts = append(postRepo.posts, &model.Post{ID: id, Title: "t", Content: "c"})
	}
	repo := &memCommentRepo{}
	return NewCommentHandler(service.NewCommentService(repo, postRepo)), repo
}

func commentRequest(postID, body string, authed bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/app/posts/"+postID+"/comments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", postID)
	if authed {
		req = authedRequest(req)
	}
	return req
}

func TestCreateCommentTrimsAndListsFirst(t *testing.T) {
	h, _ := newCommentHandler("p1")

	rec := httptest.NewRecorder()
	h.Create(rec, commentRequest("p1", `{"content":"  older  "}`, true))
	if rec.Code != http.StatusOK {
		t.Fatalf("first create status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.Create(rec, commentRequest("p1", `{"content":"  hi  "}`, true))
	if rec.Code != http.StatusOK {
		t.Fatalf("second create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["success"] != true {
		t.Errorf("response = %v, want success", resp)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/posts/p1/comments", nil)
	listReq.SetPathValue("id", "p1")
	rec = httptest.NewRecorder()
	h.ListByPost(rec, listReq)

	var comments []model.Comment
	if err := json.NewDecoder(rec.Body).Decode(&comments); err != nil {
		t.Fatalf("decoding comments: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("len = %d, want 2", len(comments))
	}
	if comments[0].Content != "hi" {
		t.Errorf("head content = %q, want trimmed %q first", comments[0].Content, "hi")
	}
	if comments[0].AuthorName != "Ada" {
		t.Errorf("authorName = %q, want snapshot Ada", comments[0].AuthorName)
	}
}

func TestCreateCommentWhitespaceOnlyRejected(t *testing.T) {
	h, repo := newCommentHandler("p1")

	rec := httptest.NewRecorder()
	h.Create(rec, commentRequest("p1", `{"content":"   "}`, true))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if len(repo.comments) != 0 {
		t.Errorf("stored %d comments, want 0", len(repo.comments))
	}
}

func TestCreateCommentUnauthenticated(t *testing.T) {
	h, _ := newCommentHandler("p1")

	rec := httptest.NewRecorder()
	h.Create(rec, commentRequest("p1", `{"content":"hello"}`, false))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestCreateCommentMissingPost(t *testing.T) {
	h, _ := newCommentHandler("p1")

	rec := httptest.NewRecorder()
	h.Create(rec, commentRequest("ghost", `{"content":"hello"}`, true))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestListCommentsEmptyPost(t *testing.T) {
	h, _ := newCommentHandler("p1")

	req := httptest.NewRequest(http.MethodGet, "/posts/p1/comments", nil)
	req.SetPathValue("id", "p1")
	rec := httptest.NewRecorder()
	h.ListByPost(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q, want empty array", body)
	}
}

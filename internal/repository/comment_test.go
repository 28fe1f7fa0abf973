package repository

import (
	"testing"
	"time"

	"github.com/inkpost/inkpost/internal/model"
)

func TestCommentsByPostNewestFirst(t *testing.T) {
	database := testDB(t)
	seedUser(t, database, "u1")
	postRepo := NewPostRepository(database)
	repo := NewCommentRepository(database)

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	seedPost(t, postRepo, "p1", "t", "c", base)
	seedPost(t, postRepo, "p2", "t", "c", base)

	for i, content := range []string{"first", "second", "third"} {
		err := repo.Create(&model.Comment{
			ID:         content,
			PostID:     "p1",
			AuthorID:   "u1",
			AuthorName: "Ada",
			Content:    content,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Create(%q): %v", content, err)
		}
	}

	comments, err := repo.ByPostID("p1")
	if err != nil {
		t.Fatalf("ByPostID: %v", err)
	}

	want := []string{"third", "second", "first"}
	if len(comments) != len(want) {
		t.Fatalf("len = %d, want %d", len(comments), len(want))
	}
	for i, comment := range comments {
		if comment.Content != want[i] {
			t.Errorf("comments[%d] = %q, want %q", i, comment.Content, want[i])
		}
	}

	// Comments are scoped to their post
	other, err := repo.ByPostID("p2")
	if err != nil {
		t.Fatalf("ByPostID(p2): %v", err)
	}
	if len(other) != 0 {
		t.Errorf("len(p2 comments) = %d, want 0", len(other))
	}
}

func TestCommentsEmptyNotError(t *testing.T) {
	database := testDB(t)
	seedUser(t, database, "u1")
	postRepo := NewPostRepository(database)
	repo := NewCommentRepository(database)

	seedPost(t, postRepo, "p1", "t", "c", time.Now())

	comments, err := repo.ByPostID("p1")
	if err != nil {
		t.Fatalf("ByPostID: %v", err)
	}
	if comments == nil {
		t.Error("comments = nil, want empty slice")
	}
	if len(comments) != 0 {
		t.Errorf("len = %d, want 0", len(comments))
	}
}

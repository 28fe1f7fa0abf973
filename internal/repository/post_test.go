package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/inkpost/inkpost/internal/db"
	"github.com/inkpost/inkpost/internal/model"
	"github.com/jmoiron/sqlx"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	// In-memory SQLite is per-connection; keep the pool at one
	database.SetMaxOpenConns(1)

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = database.Close() })
	return database
}

func seedUser(t *testing.T, database *sqlx.DB, id string) {
	t.Helper()
	user := &model.User{
		ID:           id,
		Email:        id + "@example.com",
		Name:         "Ada",
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
	err := NewUserRepository(database).Create(user)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
}

func seedPost(t *testing.T, repo PostRepository, id, title, content string, createdAt time.Time) {
	t.Helper()
	err := repo.Create(&model.Post{
		ID:        id,
		AuthorID:  "u1",
		Title:     title,
		Content:   content,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("failed to seed post %s: %v", id, err)
	}
}

func TestPostByIDNotFound(t *testing.T) {
	database := testDB(t)
	repo := NewPostRepository(database)

	_, err := repo.ByID("missing")
	if !errors.Is(err, ErrPostNotFound) {
		t.Errorf("err = %v, want ErrPostNotFound", err)
	}
}

func TestPostsNewestFirst(t *testing.T) {
	database := testDB(t)
	seedUser(t, database, "u1")
	repo := NewPostRepository(database)

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	seedPost(t, repo, "p1", "oldest", "a", base)
	seedPost(t, repo, "p2", "middle", "b", base.Add(time.Hour))
	seedPost(t, repo, "p3", "newest", "c", base.Add(2*time.Hour))

	posts, err := repo.Posts()
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("len = %d, want 3", len(posts))
	}

	want := []string{"p3", "p2", "p1"}
	for i, post := range posts {
		if post.ID != want[i] {
			t.Errorf("posts[%d].ID = %q, want %q", i, post.ID, want[i])
		}
	}
}

func TestPostImageKeyRoundTrip(t *testing.T) {
	database := testDB(t)
	seedUser(t, database, "u1")
	repo := NewPostRepository(database)

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	key := "posts/abc.png"
	err := repo.Create(&model.Post{
		ID: "p1", AuthorID: "u1", Title: "t", Content: "c",
		ImageKey: &key, CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	seedPost(t, repo, "p2", "no image", "c", now)

	withImage, err := repo.ByID("p1")
	if err != nil {
		t.Fatalf("ByID(p1): %v", err)
	}
	if withImage.ImageKey == nil || *withImage.ImageKey != key {
		t.Errorf("ImageKey = %v, want %q", withImage.ImageKey, key)
	}

	plain, err := repo.ByID("p2")
	if err != nil {
		t.Fatalf("ByID(p2): %v", err)
	}
	if plain.ImageKey != nil {
		t.Errorf("ImageKey = %v, want nil", plain.ImageKey)
	}
}

func TestSearchTitleCaseInsensitive(t *testing.T) {
	database := testDB(t)
	seedUser(t, database, "u1")
	repo := NewPostRepository(database)

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	seedPost(t, repo, "p1", "Learning Go", "notes", base)
	seedPost(t, repo, "p2", "Cooking", "go is mentioned here", base.Add(time.Minute))

	results, err := repo.SearchTitle("GO", 5)
	if err != nil {
		t.Fatalf("SearchTitle: %v", err)
	}
	if len(results) != 1 || results[0].ID != "p1" {
		t.Errorf("results = %+v, want only p1", results)
	}

	results, err = repo.SearchContent("GO", 5)
	if err != nil {
		t.Fatalf("SearchContent: %v", err)
	}
	if len(results) != 1 || results[0].ID != "p2" {
		t.Errorf("results = %+v, want only p2", results)
	}
}

func TestSearchLimit(t *testing.T) {
	database := testDB(t)
	seedUser(t, database, "u1")
	repo := NewPostRepository(database)

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		seedPost(t, repo, string(rune('a'+i)), "go everywhere", "x", base.Add(time.Duration(i)*time.Minute))
	}

	results, err := repo.SearchTitle("go", 5)
	if err != nil {
		t.Fatalf("SearchTitle: %v", err)
	}
	if len(results) != 5 {
		t.Errorf("len = %d, want 5", len(results))
	}
}

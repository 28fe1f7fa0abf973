package routes

import (
	"net/http"

	"github.com/inkpost/inkpost/internal/app"
	"github.com/inkpost/inkpost/internal/handler"
	"github.com/inkpost/inkpost/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler()
	auth := handler.NewAuthHandler(app.AuthService)
	post := handler.NewPostHandler(app.PostService)
	comment := handler.NewCommentHandler(app.CommentService)
	presence := handler.NewPresenceHandler(app.Presence)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /health", health.Health)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /auth/signup", rateLimiter(auth.Signup))
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Posts (reads are public)
	mux.HandleFunc("GET /posts", post.List)
	mux.HandleFunc("GET /posts/search", post.Search)
	mux.HandleFunc("GET /posts/{id}", post.Get)
	mux.HandleFunc("GET /posts/{id}/comments", comment.ListByPost)
	mux.HandleFunc("GET /posts/{id}/presence", presence.Viewers)

	// ============================================================================
	// PROTECTED ROUTES (/app/*)
	// ============================================================================

	mux.HandleFunc("POST /app/posts", middleware.RequireAuth(post.Create))
	mux.HandleFunc("POST /app/posts/upload-url", middleware.RequireAuth(post.UploadURL))
	mux.HandleFunc("POST /app/posts/{id}/comments", middleware.RequireAuth(comment.Create))
	mux.HandleFunc("POST /app/posts/{id}/presence", middleware.RequireAuth(presence.Heartbeat))

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService),
	)

	return handler
}

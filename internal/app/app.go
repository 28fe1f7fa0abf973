package app

import (
	"fmt"

	"github.com/inkpost/inkpost/internal/config"
	"github.com/inkpost/inkpost/internal/db"
	"github.com/inkpost/inkpost/internal/presence"
	"github.com/inkpost/inkpost/internal/repository"
	"github.com/inkpost/inkpost/internal/service"
	"github.com/inkpost/inkpost/internal/storage"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	AuthService    *service.AuthService
	PostService    *service.PostService
	CommentService *service.CommentService
	Presence       *presence.Tracker
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	postRepository := repository.NewPostRepository(database)
	commentRepository := repository.NewCommentRepository(database)

	// Storage
	blobStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Presence
	tracker, err := presence.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.PresenceTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize presence: %v", err)
	}

	// Services
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.IsProduction(), cfg.JWTExpiry)
	postService := service.NewPostService(postRepository, blobStorage, service.NewHTTPUploader())
	commentService := service.NewCommentService(commentRepository, postRepository)

	return &App{
		Cfg:            cfg,
		DB:             database,
		AuthService:    authService,
		PostService:    postService,
		CommentService: commentService,
		Presence:       tracker,
	}, nil
}

func (a *App) Close() error {
	if a.Presence != nil {
		_ = a.Presence.Close()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Kadacheahmedrami/EstinBib-sub000/database"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/cache"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/chat"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/config"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/handler"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/middleware"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/repository"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	// The cache is best effort: a missing redis degrades to direct DB reads.
	cacheClient, err := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		logger.Warn("redis unavailable, search cache disabled", "error", err)
		cacheClient = nil
	}
	defer cacheClient.Close()

	// Repositories.
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	bookRepo := repository.NewBookRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	borrowRepo := repository.NewBorrowRepository(db)
	searchRepo := repository.NewSearchRepository(db)
	sndlRepo := repository.NewSndlDemandRepository(db)
	requestRepo := repository.NewBookRequestRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	// Services.
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	bookService := service.NewBookService(bookRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	borrowService := service.NewBorrowService(borrowRepo)
	catalogService := service.NewCatalogService(searchRepo, cacheClient)
	sndlService := service.NewSndlService(sndlRepo)
	requestService := service.NewRequestService(requestRepo)
	submissionService := service.NewSubmissionService(submissionRepo)
	userService := service.NewUserService(userRepo)

	var completer chat.Completer
	if cfg.OpenAIAPIKey != "" {
		completer = chat.NewClient(cfg.OpenAIAPIKey, cfg.ChatModel)
	} else {
		logger.Warn("OPENAI_API_KEY not set, chat recommender disabled")
	}
	chatService := service.NewChatService(completer, catalogService)

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Auth routes are public but rate limited per client IP.
	authLimiter := middleware.NewRateLimiter(rate.Every(time.Second), 10)
	authGroup := api.Group("/auth")
	authGroup.Use(authLimiter.Middleware())
	handler.NewAuthHandler(authService, cfg).RegisterRoutes(authGroup)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authService))

	handler.NewBookHandler(bookService).RegisterRoutes(protected.Group("/books"))
	handler.NewSearchHandler(catalogService).RegisterRoutes(protected.Group("/search"))
	handler.NewCategoryHandler(categoryService).RegisterRoutes(protected.Group("/categories"))
	handler.NewBorrowHandler(borrowService).RegisterRoutes(protected.Group("/borrows"))
	handler.NewSndlHandler(sndlService).RegisterRoutes(protected.Group("/sndl-demands"))
	handler.NewUserHandler(userService).RegisterRoutes(protected.Group("/users"))
	handler.NewRequestHandler(requestService).RegisterRoutes(protected.Group("/book-requests"))
	handler.NewChatHandler(chatService).RegisterRoutes(protected.Group("/chat"))

	submissions := handler.NewSubmissionHandler(submissionService)
	submissions.RegisterContactRoutes(protected.Group("/contact"))
	submissions.RegisterIdeaRoutes(protected.Group("/ideas"))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

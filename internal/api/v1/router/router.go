package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/api/v1/handler"
	"app/internal/config"
	"app/internal/middleware"
	"app/internal/notify"
	"app/internal/repository"
	"app/internal/service"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New wires the full request path: store backend, services, handlers,
// middleware. The returned *sql.DB is nil for the memory backend.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	// 1. Pick the store backend
	var (
		db    *sql.DB
		store *repository.Store
	)
	switch cfg.StoreBackend {
	case "memory":
		logger.Info().Msg("Using in-memory store backend")
		store = repository.NewMemory()
	case "postgres":
		var err error
		db, err = openPostgres(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		store = repository.NewPostgres(db)
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	// 2. Initialize validator
	validate := handler.NewValidator()

	// 3. Initialize the notification dispatcher
	notifier := notify.New(cfg, logger)

	// 4. Initialize services & handlers
	courseSvc := service.NewCourseService(store.Courses)
	reviewSvc := service.NewReviewService(store.Reviews)
	inquirySvc := service.NewInquiryService(store.Inquiries, notifier)
	noticeSvc := service.NewNoticeService(store.Notices)
	authSvc := service.NewAuthService(store.Admins, cfg.JWTSecret)

	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	reviewHandler := handler.NewReviewHandler(reviewSvc, validate, logger)
	inquiryHandler := handler.NewInquiryHandler(inquirySvc, validate, logger)
	noticeHandler := handler.NewNoticeHandler(noticeSvc, validate, logger)
	authHandler := handler.NewAuthHandler(authSvc, validate, logger)

	// 5. Initialize middleware
	authMw := middleware.AuthMiddleware(cfg.JWTSecret, logger)

	// 6. Create ServeMux router, everything mounted under /api
	apiMux := http.NewServeMux()
	handler.RegisterRootRoutes(apiMux)
	courseHandler.RegisterRoutes(apiMux, authMw)
	reviewHandler.RegisterRoutes(apiMux)
	inquiryHandler.RegisterRoutes(apiMux, authMw)
	noticeHandler.RegisterRoutes(apiMux, authMw)
	authHandler.RegisterRoutes(apiMux)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiMux))

	// 7. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(logger)(c.Handler(mux)), db, nil
}

func openPostgres(cfg *config.Config, logger zerolog.Logger) (*sql.DB, error) {
	dsn := cfg.DBConnectionString
	// Local development runs without TLS unless the DSN says otherwise.
	if cfg.Environment == "development" && !strings.Contains(dsn, "sslmode") {
		separator := "?"
		if strings.Contains(dsn, "?") {
			separator = "&"
		}
		dsn += separator + "sslmode=disable"
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	logger.Info().Msg("Database connection successful")

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repository.EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("schema bootstrap: %w", err)
	}

	return db, nil
}

package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"storyloom/internal/auth"
	"storyloom/internal/catalog"
	"storyloom/internal/config"
	"storyloom/internal/handler"
	"storyloom/internal/middleware"
	"storyloom/internal/repository/postgres"
	"storyloom/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"header_auth", cfg.AllowHeaderAuth,
	)

	// Create JWT verifier for Supabase authentication
	jwtVerifier, err := auth.NewJWTVerifier(cfg.SupabaseJWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	if cfg.AutoMigrate {
		if err := postgres.ApplyMigrations(pool); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		logger.Info("schema migrations applied")
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	storyRepo := postgres.NewStoryRepository(repoConfig)
	chapterRepo := postgres.NewChapterRepository(repoConfig)
	characterRepo := postgres.NewCharacterRepository(repoConfig)
	locationRepo := postgres.NewLocationRepository(repoConfig)
	objectRepo := postgres.NewObjectRepository(repoConfig)

	// Load the embedded catalog (importance levels, genres)
	registry, err := catalog.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Create services
	storyService := service.NewStoryService(storyRepo, logger)
	chapterService := service.NewChapterService(chapterRepo, storyRepo, logger)
	characterService := service.NewCharacterService(characterRepo, logger)
	locationService := service.NewLocationService(locationRepo, logger)
	objectService := service.NewObjectService(objectRepo, registry, logger)
	analyticsService := service.NewAnalyticsService(storyRepo, chapterRepo, logger)

	// Create handlers
	storyHandler := handler.NewStoryHandler(storyService, logger)
	chapterHandler := handler.NewChapterHandler(chapterService, logger)
	characterHandler := handler.NewCharacterHandler(characterService, logger)
	locationHandler := handler.NewLocationHandler(locationService, logger)
	objectHandler := handler.NewObjectHandler(objectService, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, logger)
	catalogHandler := handler.NewCatalogHandler(registry)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /api/health", handler.Health)

	// Catalog
	mux.HandleFunc("GET /api/catalog", catalogHandler.Get)

	// Story routes
	mux.HandleFunc("GET /api/stories", storyHandler.List)
	mux.HandleFunc("POST /api/stories", storyHandler.Create)
	mux.HandleFunc("GET /api/stories/{id}", storyHandler.Get)
	mux.HandleFunc("PUT /api/stories/{id}", storyHandler.Update)
	mux.HandleFunc("DELETE /api/stories/{id}", storyHandler.Delete)
	mux.HandleFunc("GET /api/stories/{id}/analytics", analyticsHandler.StoryAnalytics)

	// Dashboard
	mux.HandleFunc("GET /api/dashboard", analyticsHandler.Dashboard)

	// Chapter routes
	mux.HandleFunc("GET /api/chapters", chapterHandler.List)
	mux.HandleFunc("POST /api/chapters", chapterHandler.Create)
	mux.HandleFunc("GET /api/chapters/{id}", chapterHandler.Get)
	mux.HandleFunc("PUT /api/chapters/{id}", chapterHandler.Update)
	mux.HandleFunc("DELETE /api/chapters/{id}", chapterHandler.Delete)

	// Character routes
	mux.HandleFunc("GET /api/characters", characterHandler.List)
	mux.HandleFunc("POST /api/characters", characterHandler.Create)
	mux.HandleFunc("GET /api/characters/{id}", characterHandler.Get)
	mux.HandleFunc("PUT /api/characters/{id}", characterHandler.Update)
	mux.HandleFunc("DELETE /api/characters/{id}", characterHandler.Delete)

	// Location routes
	mux.HandleFunc("GET /api/locations", locationHandler.List)
	mux.HandleFunc("POST /api/locations", locationHandler.Create)
	mux.HandleFunc("GET /api/locations/{id}", locationHandler.Get)
	mux.HandleFunc("PUT /api/locations/{id}", locationHandler.Update)
	mux.HandleFunc("DELETE /api/locations/{id}", locationHandler.Delete)

	// Object routes
	mux.HandleFunc("GET /api/objects", objectHandler.List)
	mux.HandleFunc("POST /api/objects", objectHandler.Create)
	mux.HandleFunc("GET /api/objects/{id}", objectHandler.Get)
	mux.HandleFunc("PUT /api/objects/{id}", objectHandler.Update)
	mux.HandleFunc("DELETE /api/objects/{id}", objectHandler.Delete)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Logging → NoCache → Auth → Routes
	root = middleware.Auth(jwtVerifier, cfg.AllowHeaderAuth, logger)(root)
	root = middleware.NoCache(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-Id"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

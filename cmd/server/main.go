// Jumpstart Style Assistant server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/jumpstart/style-assistant/internal/api"
	"github.com/jumpstart/style-assistant/internal/bot"
	"github.com/jumpstart/style-assistant/internal/catalog"
	"github.com/jumpstart/style-assistant/internal/config"
	"github.com/jumpstart/style-assistant/internal/faq"
	"github.com/jumpstart/style-assistant/internal/middleware"
	"github.com/jumpstart/style-assistant/internal/session"
	"github.com/jumpstart/style-assistant/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "session_ttl", cfg.SessionTTL)

	// Initialize dependencies.
	faqs, err := faq.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize FAQ database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := faqs.Close(); closeErr != nil {
			slog.Error("Failed to close FAQ store", "error", closeErr)
		}
	}()

	if err := faqs.Ping(context.Background()); err != nil {
		slog.Error("FAQ database health check failed", "error", err)
		os.Exit(1)
	}

	seeded, err := faq.SeedIfEmpty(context.Background(), faqs)
	if err != nil {
		slog.Error("Failed to seed FAQ database", "error", err)
		os.Exit(1)
	}
	slog.Info("FAQ database ready", "seeded", seeded)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load product catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("Product catalog loaded", "products", cat.Len())

	sessions := session.NewMemoryStore(cfg.SessionTTL, cfg.SessionCapacity)
	defer sessions.Close()

	transcript, err := bot.NewTranscriptLogger(bot.TranscriptConfig{
		Enabled:   cfg.Transcript.Enabled,
		Dir:       cfg.Transcript.Dir,
		QueueSize: cfg.Transcript.QueueSize,
	}, logger)
	if err != nil {
		slog.Error("Failed to initialize transcript logger", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := transcript.Close(); closeErr != nil {
			slog.Error("Failed to close transcript logger", "error", closeErr)
		}
	}()

	// Initialize services and handlers.
	svc := bot.NewService(sessions, bot.NewResponder(cat, faqs), transcript)
	limiter := api.NewRateLimiter(cfg.RateLimit.RequestsPerWindow, cfg.RateLimit.WindowDuration)
	handler := api.NewHandler(svc, sessions, cat, limiter, nil)
	wsHandler := api.NewWebSocketHandler(svc, cfg.AllowedOrigins)

	// Setup router.
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	handler.RegisterRoutes(r)
	r.Get("/ws/chat", wsHandler.ServeHTTP)

	// Serve embedded storefront frontend.
	r.Handle("/*", web.Handler())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}

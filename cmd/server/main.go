package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/textcraft-ai/textcraft-api/config"
	"github.com/textcraft-ai/textcraft-api/internal/api"
	"github.com/textcraft-ai/textcraft-api/internal/auth"
	"github.com/textcraft-ai/textcraft-api/internal/generate"
	"github.com/textcraft-ai/textcraft-api/internal/mailer"
	"github.com/textcraft-ai/textcraft-api/internal/provider/deepseek"
	"github.com/textcraft-ai/textcraft-api/internal/provider/mock"
	"github.com/textcraft-ai/textcraft-api/internal/provider/openai"
	"github.com/textcraft-ai/textcraft-api/internal/seeder"
	"github.com/textcraft-ai/textcraft-api/internal/store"
	"github.com/textcraft-ai/textcraft-api/internal/telemetry"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Init telemetry
	shutdownTracer, err := telemetry.InitTracer("textcraft-api", cfg)
	if err != nil {
		logger.Error("failed to init tracer", "error", err)
		os.Exit(1)
	}
	defer shutdownTracer()

	// 3. Connect PostgreSQL
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Error("failed to connect postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Error("failed to ping postgres", "error", err)
		os.Exit(1)
	}
	logger.Info("PostgreSQL connected")

	// 4. Connect Redis
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("failed to ping redis", "error", err)
		os.Exit(1)
	}
	logger.Info("Redis connected")

	// 5. Init auth
	authStore := auth.NewPostgresStore(pool)
	authMiddleware := auth.NewMiddleware(authStore, rdb)

	// 6. Init stores
	profiles := store.NewPostgresProfileStore(pool)
	preferences := store.NewPostgresPreferenceStore(pool)
	templates := store.NewPostgresTemplateStore(pool)
	texts := store.NewPostgresGeneratedTextStore(pool)

	// 7. Init generation chain
	tracer := otel.GetTracerProvider().Tracer("textcraft-api")
	orchestrator := generate.NewOrchestrator(
		deepseek.New(cfg.DeepSeek),
		openai.New(cfg.OpenAI),
		mock.New(),
		texts,
		tracer,
		logger,
	)

	// 8. Init mailer
	mail := mailer.New(cfg.ResendAPIKey, cfg.EmailFrom)

	// 9. Init handler
	handler := api.NewHandler(orchestrator, mail, profiles, preferences, templates, texts, logger)

	// 10. Seed test API key if RUN_SEED=true
	if os.Getenv("RUN_SEED") == "true" {
		seeder.SeedTestAPIKey(ctx, authStore)
	}

	// 11. Init Chi router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// Public routes
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","service":"textcraft-api"}`))
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Post("/v1/generate", handler.HandleGenerate)

		r.Post("/v1/email", handler.HandleSendEmail)
		r.Get("/v1/email/verify", handler.HandleVerifyEmail)

		r.Get("/v1/texts", handler.HandleListTexts)
		r.Get("/v1/texts/{id}", handler.HandleGetText)
		r.Delete("/v1/texts/{id}", handler.HandleDeleteText)

		r.Get("/v1/templates", handler.HandleListTemplates)
		r.Post("/v1/templates", handler.HandleCreateTemplate)
		r.Get("/v1/templates/{id}", handler.HandleGetTemplate)
		r.Put("/v1/templates/{id}", handler.HandleUpdateTemplate)
		r.Delete("/v1/templates/{id}", handler.HandleDeleteTemplate)

		r.Get("/v1/profile", handler.HandleGetProfile)
		r.Put("/v1/profile", handler.HandleUpdateProfile)
		r.Delete("/v1/profile", handler.HandleDeleteProfile)

		r.Get("/v1/preferences", handler.HandleGetPreferences)
		r.Put("/v1/preferences", handler.HandleUpdatePreferences)
	})

	// 12. Graceful shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("TextCraft API starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	logger.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

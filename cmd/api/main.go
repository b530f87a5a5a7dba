// Package main is the entry point for the trip planner API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
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
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/wanderplan/trip-planner/backend/internal/catalog"
	"github.com/wanderplan/trip-planner/backend/internal/config"
	"github.com/wanderplan/trip-planner/backend/internal/handler"
	"github.com/wanderplan/trip-planner/backend/internal/middleware"
	"github.com/wanderplan/trip-planner/backend/internal/narrative"
	"github.com/wanderplan/trip-planner/backend/internal/planner"
	"github.com/wanderplan/trip-planner/backend/internal/service"
	"github.com/wanderplan/trip-planner/backend/internal/store"
)

// maxBodyBytes caps request bodies; trip requests are small JSON documents.
const maxBodyBytes = 64 << 10

func main() {
	// --- Config -----------------------------------------------------------
	// .env is a local-dev convenience; production sets real env vars.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog JSON handler writes machine-readable output suitable for log
	// aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Collaborators ----------------------------------------------------
	// The rewriter degrades to Disabled without an API key; generation and
	// rendering never depend on the external service being reachable.
	rewriter := narrative.NewOpenAIRewriter(context.Background(), narrative.Config{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
		Timeout: cfg.NarrativeTimeout,
	})
	if cfg.OpenAIAPIKey == "" {
		slog.Info("narrative rewriting disabled (no OPENAI_API_KEY)")
	}

	itineraries := service.NewItineraryService(
		planner.New(catalog.Default()),
		store.NewMemoryStore(),
		rewriter,
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	srvHandler := handler.NewServer(itineraries)
	r.Mount("/", srvHandler.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// WriteTimeout leaves headroom for a slow narrative rewrite call.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.NarrativeTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

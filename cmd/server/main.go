package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/lmittmann/tint"

	"github.com/Shadab-Akram/FlashCard/internal/api"
	"github.com/Shadab-Akram/FlashCard/internal/generator"
	"github.com/Shadab-Akram/FlashCard/internal/infrastructure/config"
	"github.com/Shadab-Akram/FlashCard/internal/service"
	"github.com/Shadab-Akram/FlashCard/internal/store"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.LogFormat)

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var llm generator.Generator
	if cfg.LLMURL != "" {
		llm = generator.NewLLMGenerator(cfg.LLMURL, cfg.LLMModel)
		logger.Info("llm generation enabled", "url", cfg.LLMURL, "model", cfg.LLMModel)
	} else {
		logger.Info("llm generation disabled, serving static question banks")
	}

	sessions := service.NewSessionService(db, logger)
	generation := service.NewGenerationService(db, llm, logger)
	handler := api.NewHandler(db, sessions, generation, logger)

	// ── Retention sweeper ───────────────────────────────────────────
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	if cfg.SessionTTL > 0 {
		sweeper := service.NewRetentionSweeper(db, cfg.SessionTTL, logger)
		go sweeper.Run(sweepCtx)
	}

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(cors.AllowAll().Handler(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		stopSweep()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

func newLogger(format string) *slog.Logger {
	if format == "text" {
		return slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

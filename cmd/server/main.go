// Command server runs the HealthLoop HTTP API.
//
// Startup order:
//  1. Load .env (best effort) and validate configuration
//  2. Configure zerolog (level, optional pretty console)
//  3. Open SQLite, migrate schema, attach GORM tracing
//  4. Set up OpenTelemetry (when enabled)
//  5. Build AI collaborator clients and register routes
//  6. Serve with graceful shutdown on SIGINT/SIGTERM
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/healthloop/go-health-backend/internal/assistant"
	"github.com/healthloop/go-health-backend/internal/config"
	httpapi "github.com/healthloop/go-health-backend/internal/http"
	"github.com/healthloop/go-health-backend/internal/observability"
	"github.com/healthloop/go-health-backend/internal/repo"
	"github.com/healthloop/go-health-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

// @title        HealthLoop API
// @version      1.0
// @description  Personal health tracking backend: daily check-ins, AI triage, assistant chat, streaks, trends, and export.
// @BasePath     /api/v1
func main() {
	// .env is optional; real deployments use the process environment.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	log.Info().Str("version", version).Str("port", cfg.Port).Msg("starting server")

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate schema")
	}
	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		log.Fatal().Err(err).Msg("attach gorm tracing")
	}

	ctx := context.Background()
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("setup opentelemetry")
	}

	ai := collaborators(cfg.Assistant)

	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	httpapi.RegisterRoutes(engine, db, ai, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	stop, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("otel shutdown")
	}
}

// collaborators builds the AI clients from configuration. Without a base URL
// the chat and triage endpoints degrade (fallback reply, 503) and scoring
// falls back to the placeholder heuristic.
func collaborators(cfg config.AssistantConfig) httpapi.Collaborators {
	client := assistant.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout)
	c := httpapi.Collaborators{Chatter: client, Assessor: client}
	if cfg.BaseURL != "" {
		c.Scorer = client
	}
	return c
}

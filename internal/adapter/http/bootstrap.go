package http

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"checklistapp/internal/adapter/database/postgres"
	pgrepository "checklistapp/internal/adapter/database/postgres/repository"
	"checklistapp/internal/adapter/database/sqlite"
	repository "checklistapp/internal/adapter/database/sqlite/repository"
	"checklistapp/internal/adapter/http/routes"
	"checklistapp/internal/core/port"
	"checklistapp/internal/core/telemetry"
	"checklistapp/pkg/config"
)

func StartServer(metrics *telemetry.AppMetrics, logger *otelzap.Logger) {
	StartServerWithConfig(metrics, logger, config.GetDefaultConfig())
}

func StartServerWithConfig(metrics *telemetry.AppMetrics, logger *otelzap.Logger, cfg *config.AppConfig) {
	checklistRepo, closer := newRepository()
	defer closer.Close()

	container := NewContainer(checklistRepo)

	router := routes.SetupRouterWithConfig(routes.HandlersConfig{
		ChecklistItemHandler: container.ChecklistItemHandler,
	}, metrics, logger, cfg)

	port := os.Getenv("PORT")

	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("port", port).
		Str("environment", cfg.Environment).
		Bool("rate_limit_enabled", cfg.RateLimitEnabled).
		Msg("Server starting")

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("Server failed to start")
	}
}

// newRepository picks postgres when DATABASE_URL is set and falls back to
// the embedded sqlite database otherwise.
func newRepository() (port.ChecklistItemRepository, io.Closer) {
	if os.Getenv("DATABASE_URL") != "" {
		db, err := postgres.NewDB()

		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to postgres")
		}

		return pgrepository.NewChecklistItemRepository(db), closerFunc(func() error {
			db.Close()
			return nil
		})
	}

	db, err := sqlite.NewDB()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open sqlite database")
	}

	return repository.NewChecklistItemRepository(db), db
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	api "checklistapp/internal/adapter/http"
	"checklistapp/internal/adapter/telemetry"
	"checklistapp/pkg/config"
)

func main() {
	ctx := context.Background()

	zlog.Logger = zlog.Output(zerolog.New(os.Stdout).With().Timestamp().Logger())

	zapLogger, err := zap.NewProduction()

	if err != nil {
		log.Fatal("Failed to initialize request logger:", err)
	}

	requestLogger := otelzap.New(zapLogger)
	defer requestLogger.Sync()

	otlpEndpoint := os.Getenv("OTLP_ENDPOINT")

	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	tel, err := telemetry.NewContainer(telemetry.Config{
		ServiceName:    "checklistapp",
		ServiceVersion: "1.0.0",
		MetricsPort:    "9091",
		OTLPEndpoint:   otlpEndpoint,
	}, zlog.Logger)

	if err != nil {
		log.Fatal("Failed to initialize telemetry:", err)
	}

	defer tel.Shutdown(ctx)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		cfg := config.GetDefaultConfig()

		if os.Getenv("GIN_MODE") == "release" {
			cfg.Environment = "production"
		}

		api.StartServerWithConfig(tel.AppMetrics, requestLogger, cfg)
	}()

	<-c
	zlog.Info().Msg("Shutting down gracefully...")
}

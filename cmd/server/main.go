package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rohits-web03/filedock/internal/api"
	"github.com/rohits-web03/filedock/internal/api/handlers"
	"github.com/rohits-web03/filedock/internal/api/services"
	"github.com/rohits-web03/filedock/internal/config"
	"github.com/rohits-web03/filedock/internal/logger"
	"github.com/rohits-web03/filedock/internal/repositories"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// @title filedock API
// @version 1.0
// @description Upload files to object storage and record their metadata.
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	db, err := repositories.ConnectDatabase(cfg.DB_URL)
	if err != nil {
		return err
	}
	documents := repositories.NewDocumentStore(db)
	if err := documents.Migrate(cfg.Documents.CollectionID); err != nil {
		return err
	}

	storage, closeStorage, err := newObjectStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	svc := services.NewUploadService(storage, documents, services.UploadConfig{
		BucketID:       cfg.Storage.BucketID,
		DatabaseID:     cfg.Documents.DatabaseID,
		CollectionID:   cfg.Documents.CollectionID,
		PublicBaseURL:  cfg.Storage.PublicBaseURL,
		ProjectID:      cfg.Storage.ProjectID,
		CleanupOrphans: cfg.Upload.CleanupOrphans,
	})
	files := handlers.NewFileHandler(svc, cfg.Upload.MaxMemory)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(files, cfg.CorsOptions()),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.Storage.Driver).Msg("starting filedock server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newObjectStorage returns the driver selected by STORAGE_DRIVER and its cleanup func.
func newObjectStorage(ctx context.Context, cfg *config.Config) (services.ObjectStorage, func(), error) {
	noop := func() {}
	switch strings.ToLower(cfg.Storage.Driver) {
	case config.DriverMinio:
		s, err := repositories.NewMinioStorage(ctx, cfg.Storage.Minio, cfg.Storage.BucketID)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case config.DriverGCS:
		s, err := repositories.NewGCSStorage(ctx, cfg.Storage.GCS)
		if err != nil {
			return nil, noop, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close gcs client")
			}
		}, nil
	default:
		return repositories.NewS3Storage(cfg.Storage.S3), noop, nil
	}
}

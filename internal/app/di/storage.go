// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"fmt"
	"log/slog"

	"growth_journal/internal/feature/media/usecase"
	"growth_journal/internal/platform/config"
	infrahttp "growth_journal/internal/platform/http"
	"growth_journal/internal/platform/storage"
	"growth_journal/internal/platform/storage/s3store"
	"growth_journal/internal/platform/storage/uploadthing"
)

// NewObjectStorage creates the object deleter selected by STORAGE_PROVIDER.
func NewObjectStorage(ctx context.Context, cfg config.StorageConfig) (usecase.ObjectStorage, error) {
	switch cfg.Provider {
	case config.StorageUploadThing, "":
		if cfg.UploadThingSecret == "" {
			slog.Warn("UPLOADTHING_SECRET is not set. Media deletion will fail for stored objects.")
		}
		return uploadthing.NewClient(uploadthing.Config{
			Secret:  cfg.UploadThingSecret,
			BaseURL: cfg.UploadThingURL,
			Timeout: cfg.Timeout,
		}, infrahttp.NewHTTPClient(cfg.Timeout)), nil
	case config.StorageS3:
		return s3store.New(ctx, s3store.Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	case config.StorageNone:
		slog.Info("external storage disabled; stored objects are left in place")
		return storage.Noop{}, nil
	default:
		return nil, fmt.Errorf("unsupported STORAGE_PROVIDER %q", cfg.Provider)
	}
}

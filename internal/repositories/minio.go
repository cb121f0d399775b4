package repositories

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rohits-web03/filedock/internal/config"
	"github.com/rohits-web03/filedock/internal/models"
	"github.com/rs/zerolog/log"
)

type MinioStorage struct {
	client *minio.Client
}

// NewMinioStorage connects to MinIO and creates bucketID when it does not exist yet.
func NewMinioStorage(ctx context.Context, cfg config.MinioConfig, bucketID string) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucketID)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketID, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Info().Str("bucket", bucketID).Msg("created minio bucket")
	}

	return &MinioStorage{client: client}, nil
}

func (m *MinioStorage) CreateObject(ctx context.Context, bucketID, objectID string, data []byte, name string) (*models.StoredObject, error) {
	info, err := m.client.PutObject(ctx, bucketID, objectID, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentDisposition: contentDisposition(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to put object: %w", err)
	}
	return &models.StoredObject{ID: objectID, Name: name, Size: info.Size}, nil
}

func (m *MinioStorage) DeleteObject(ctx context.Context, bucketID, objectID string) error {
	if err := m.client.RemoveObject(ctx, bucketID, objectID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

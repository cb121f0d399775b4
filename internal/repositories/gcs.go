package repositories

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/rohits-web03/filedock/internal/config"
	"github.com/rohits-web03/filedock/internal/models"
	"google.golang.org/api/option"
)

type GCSStorage struct {
	client *storage.Client
}

// NewGCSStorage uses application default credentials unless a credentials file is set.
func NewGCSStorage(ctx context.Context, cfg config.GCSConfig) (*GCSStorage, error) {
	client, err := storage.NewClient(ctx, gcsClientOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSStorage{client: client}, nil
}

// gcsClientOptions only drops authentication for a custom endpoint without a
// credentials file, as with a local emulator.
func gcsClientOptions(cfg config.GCSConfig) []option.ClientOption {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
		if cfg.CredentialsFile == "" {
			opts = append(opts, option.WithoutAuthentication())
		}
	}
	return opts
}

func (g *GCSStorage) CreateObject(ctx context.Context, bucketID, objectID string, data []byte, name string) (*models.StoredObject, error) {
	w := g.client.Bucket(bucketID).Object(objectID).NewWriter(ctx)
	w.ContentDisposition = contentDisposition(name)

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		w.Close()
		return nil, fmt.Errorf("write object %s: %w", objectID, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close object %s: %w", objectID, err)
	}

	size := int64(len(data))
	if attrs := w.Attrs(); attrs != nil {
		size = attrs.Size
	}
	return &models.StoredObject{ID: objectID, Name: name, Size: size}, nil
}

func (g *GCSStorage) DeleteObject(ctx context.Context, bucketID, objectID string) error {
	if err := g.client.Bucket(bucketID).Object(objectID).Delete(ctx); err != nil {
		return fmt.Errorf("delete object %s: %w", objectID, err)
	}
	return nil
}

func (g *GCSStorage) Close() error {
	return g.client.Close()
}

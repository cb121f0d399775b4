package repositories

import (
	"bytes"
	"context"
	"fmt"
	"mime"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rohits-web03/filedock/internal/config"
	"github.com/rohits-web03/filedock/internal/models"
	"github.com/rs/zerolog/log"
)

// S3Storage writes objects to any S3 compatible endpoint, Cloudflare R2 included.
type S3Storage struct {
	client *s3.Client
}

// NewS3Storage builds a client with static credentials. Without an explicit
// endpoint the R2 endpoint for AccountID is used.
func NewS3Storage(cfg config.S3Config) *S3Storage {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	}

	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	log.Info().Str("endpoint", endpoint).Msg("successfully initialized s3 client")
	return &S3Storage{client: client}
}

// CreateObject puts the bytes under objectID and reads back the stored size.
func (s *S3Storage) CreateObject(ctx context.Context, bucketID, objectID string, data []byte, name string) (*models.StoredObject, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(bucketID),
		Key:                aws.String(objectID),
		Body:               bytes.NewReader(data),
		ContentLength:      aws.Int64(int64(len(data))),
		ContentDisposition: aws.String(contentDisposition(name)),
	})
	if err != nil {
		return nil, fmt.Errorf("put object %s: %w", objectID, err)
	}

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucketID),
		Key:    aws.String(objectID),
	})
	if err != nil {
		return nil, fmt.Errorf("head object %s: %w", objectID, err)
	}

	return &models.StoredObject{
		ID:   objectID,
		Name: name,
		Size: aws.ToInt64(head.ContentLength),
	}, nil
}

func (s *S3Storage) DeleteObject(ctx context.Context, bucketID, objectID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketID),
		Key:    aws.String(objectID),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", objectID, err)
	}
	return nil
}

// contentDisposition keeps non-ASCII names out of raw header values.
func contentDisposition(name string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": name}); v != "" {
		return v
	}
	return "attachment"
}

package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rohits-web03/filedock/internal/metrics"
	"github.com/rohits-web03/filedock/internal/models"
	"github.com/rohits-web03/filedock/internal/utils"
	"github.com/rs/zerolog"
)

// DefaultFileName is used when an uploaded file carries no name.
const DefaultFileName = "upload"

// ObjectStorage persists raw file bytes in a bucket.
type ObjectStorage interface {
	CreateObject(ctx context.Context, bucketID, objectID string, data []byte, name string) (*models.StoredObject, error)
	DeleteObject(ctx context.Context, bucketID, objectID string) error
}

// DocumentStore persists metadata documents in a collection.
type DocumentStore interface {
	CreateDocument(ctx context.Context, databaseID, collectionID string, id uuid.UUID, fields models.FileMetadata) (*models.FileDocument, error)
}

type UploadConfig struct {
	BucketID      string
	DatabaseID    string
	CollectionID  string
	PublicBaseURL string
	ProjectID     string
	// CleanupOrphans deletes the stored object when its metadata write fails.
	CleanupOrphans bool
}

// FileInput is the uploaded payload. A nil *FileInput means no file was sent.
type FileInput struct {
	Name string
	Data []byte
}

type UploadInput struct {
	File      *FileInput
	OwnerID   string
	AccountID string
}

func (in UploadInput) missingFields() []string {
	var missing []string
	if in.File == nil {
		missing = append(missing, "file")
	}
	if in.OwnerID == "" {
		missing = append(missing, "ownerId")
	}
	if in.AccountID == "" {
		missing = append(missing, "accountId")
	}
	return missing
}

type Option func(*UploadService)

// WithIDGenerator replaces uuid.New for object and document ids.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(s *UploadService) {
		s.newID = fn
	}
}

type UploadService struct {
	storage   ObjectStorage
	documents DocumentStore
	cfg       UploadConfig
	newID     func() uuid.UUID
}

func NewUploadService(storage ObjectStorage, documents DocumentStore, cfg UploadConfig, opts ...Option) *UploadService {
	s := &UploadService{
		storage:   storage,
		documents: documents,
		cfg:       cfg,
		newID:     uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upload stores the file bytes, then records their metadata. The document is
// only written after the object write succeeded.
func (s *UploadService) Upload(ctx context.Context, in UploadInput) (*models.FileDocument, error) {
	if missing := in.missingFields(); len(missing) > 0 {
		metrics.UploadsTotal.WithLabelValues(metrics.OutcomeValidation).Inc()
		return nil, &ValidationError{Fields: missing}
	}

	name := in.File.Name
	if name == "" {
		name = DefaultFileName
	}

	log := zerolog.Ctx(ctx)

	objectID := s.newID().String()
	obj, err := s.storage.CreateObject(ctx, s.cfg.BucketID, objectID, in.File.Data, name)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(metrics.OutcomeStorage).Inc()
		return nil, &UpstreamError{Kind: KindStorage, Op: "create object", Err: err}
	}
	metrics.UploadBytes.Add(float64(obj.Size))
	log.Debug().Str("bucket_file_id", obj.ID).Int64("size", obj.Size).Msg("object stored")

	fileType, extension := utils.GetFileType(obj.Name)
	fields := models.FileMetadata{
		Type:         fileType,
		Name:         obj.Name,
		URL:          utils.ConstructFileURL(s.cfg.PublicBaseURL, s.cfg.BucketID, s.cfg.ProjectID, obj.ID),
		Extension:    extension,
		Size:         obj.Size,
		Owner:        in.OwnerID,
		AccountID:    in.AccountID,
		Users:        []string{},
		BucketFileID: obj.ID,
	}

	doc, err := s.documents.CreateDocument(ctx, s.cfg.DatabaseID, s.cfg.CollectionID, s.newID(), fields)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(metrics.OutcomeDatabase).Inc()
		if s.cfg.CleanupOrphans {
			s.removeOrphan(ctx, obj.ID)
		}
		return nil, &UpstreamError{Kind: KindDatabase, Op: "create document", Err: err}
	}

	metrics.UploadsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return doc, nil
}

// removeOrphan runs even if the request context was canceled.
func (s *UploadService) removeOrphan(ctx context.Context, objectID string) {
	log := zerolog.Ctx(ctx)
	if err := s.storage.DeleteObject(context.WithoutCancel(ctx), s.cfg.BucketID, objectID); err != nil {
		metrics.OrphansRemoved.WithLabelValues("failed").Inc()
		log.Error().Err(err).Str("bucket_file_id", objectID).Msg("failed to remove orphaned object")
		return
	}
	metrics.OrphansRemoved.WithLabelValues("removed").Inc()
	log.Warn().Str("bucket_file_id", objectID).Msg("removed orphaned object")
}

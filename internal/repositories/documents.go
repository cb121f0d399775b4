package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rohits-web03/filedock/internal/models"
	"gorm.io/gorm"
)

// DocumentStore keeps one table per collection.
type DocumentStore struct {
	db *gorm.DB
}

func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Migrate creates or updates the table backing a collection.
func (s *DocumentStore) Migrate(collectionID string) error {
	if err := s.db.Table(collectionID).AutoMigrate(&models.FileDocument{}); err != nil {
		return fmt.Errorf("migrate collection %s: %w", collectionID, err)
	}
	return nil
}

func (s *DocumentStore) CreateDocument(ctx context.Context, databaseID, collectionID string, id uuid.UUID, fields models.FileMetadata) (*models.FileDocument, error) {
	if fields.Users == nil {
		fields.Users = []string{}
	}
	doc := &models.FileDocument{
		ID:           id,
		DatabaseID:   databaseID,
		CollectionID: collectionID,
		FileMetadata: fields,
	}
	if err := s.db.WithContext(ctx).Table(collectionID).Create(doc).Error; err != nil {
		return nil, fmt.Errorf("create document in %s: %w", collectionID, err)
	}
	return doc, nil
}

package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rohits-web03/filedock/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockObjectStorage struct {
	mock.Mock
}

func NewMockObjectStorage() *MockObjectStorage {
	return &MockObjectStorage{}
}

func (m *MockObjectStorage) CreateObject(ctx context.Context, bucketID, objectID string, data []byte, name string) (*models.StoredObject, error) {
	args := m.Called(ctx, bucketID, objectID, data, name)
	if fn, ok := args.Get(0).(func(context.Context, string, string, []byte, string) (*models.StoredObject, error)); ok {
		return fn(ctx, bucketID, objectID, data, name)
	}
	obj, _ := args.Get(0).(*models.StoredObject)
	return obj, args.Error(1)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, bucketID, objectID string) error {
	args := m.Called(ctx, bucketID, objectID)
	return args.Error(0)
}

type MockDocumentStore struct {
	mock.Mock
}

func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{}
}

func (m *MockDocumentStore) CreateDocument(ctx context.Context, databaseID, collectionID string, id uuid.UUID, fields models.FileMetadata) (*models.FileDocument, error) {
	args := m.Called(ctx, databaseID, collectionID, id, fields)
	if fn, ok := args.Get(0).(func(context.Context, string, string, uuid.UUID, models.FileMetadata) (*models.FileDocument, error)); ok {
		return fn(ctx, databaseID, collectionID, id, fields)
	}
	doc, _ := args.Get(0).(*models.FileDocument)
	return doc, args.Error(1)
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FileType string

const (
	FileTypeDocument FileType = "document"
	FileTypeImage    FileType = "image"
	FileTypeVideo    FileType = "video"
	FileTypeAudio    FileType = "audio"
	FileTypeOther    FileType = "other"
)

// FileMetadata describes an uploaded file. The bytes live in object storage under BucketFileID.
type FileMetadata struct {
	Type         FileType                    `json:"type" gorm:"not null"`
	Name         string                      `json:"name" gorm:"not null"`
	URL          string                      `json:"url" gorm:"not null"`
	Extension    string                      `json:"extension"`
	Size         int64                       `json:"size" gorm:"not null"` // bytes, as reported by storage
	Owner        string                      `json:"owner" gorm:"index;not null"`
	AccountID    string                      `json:"accountId" gorm:"index;not null"`
	Users        datatypes.JSONSlice[string] `json:"users" gorm:"type:jsonb;not null"`
	BucketFileID string                      `json:"bucketFileId" gorm:"uniqueIndex;not null"`
}

// FileDocument is a FileMetadata record as persisted in a collection.
type FileDocument struct {
	ID           uuid.UUID `json:"$id" gorm:"type:uuid;primaryKey"`
	DatabaseID   string    `json:"$databaseId" gorm:"not null"`
	CollectionID string    `json:"$collectionId" gorm:"not null"`
	CreatedAt    time.Time `json:"$createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"$updatedAt" gorm:"autoUpdateTime"`
	FileMetadata `gorm:"embedded"`
}

// StoredObject is what object storage reports back after a write.
type StoredObject struct {
	ID   string
	Name string
	Size int64
}

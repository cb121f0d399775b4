package services

import "strings"

// ErrorKind tells where an upload failed.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindStorage
	KindDatabase
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindStorage:
		return "storage"
	case KindDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// MissingDataMessage is the only message a ValidationError ever carries.
const MissingDataMessage = "Missing data"

// ValidationError reports required upload fields that were absent.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return MissingDataMessage
}

func (e *ValidationError) Detail() string {
	return "missing fields: " + strings.Join(e.Fields, ", ")
}

// UpstreamError wraps a failure returned by object storage or the document store.
// Error() is the upstream message verbatim.
type UpstreamError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

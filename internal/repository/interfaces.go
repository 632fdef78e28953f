package repository

import (
	"context"
	"time"
)

// DocumentStore persists whole named documents. A collection is read and
// written as one document; there are no partial updates.
type DocumentStore interface {
	// ReadDocument returns the document body, or ErrNotFound if it was never written.
	ReadDocument(ctx context.Context, name string) ([]byte, error)
	// WriteDocument replaces the document body.
	WriteDocument(ctx context.Context, name string, data []byte) error
}

// DocumentClock is implemented by stores that can tell when a document was
// last written.
type DocumentClock interface {
	// UpdatedAt returns the last write time, or ErrNotFound if the document
	// was never written.
	UpdatedAt(ctx context.Context, name string) (time.Time, error)
}

// Document names used by the farm record collections.
const (
	DocumentCrops      = "crops"
	DocumentAnimals    = "animals"
	DocumentActivities = "activities"
	DocumentUsers      = "users"
	DocumentHistory    = "history"
)

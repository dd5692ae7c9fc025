package documents

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a document id does not exist in the store.
var ErrNotFound = errors.New("document not found")

// Repository port for persisting and querying documents
type Repository interface {
	Save(ctx context.Context, d *Document) error
	Get(ctx context.Context, id DocumentID) (*Document, error)
	ListByProject(ctx context.Context, projectID string, limit int) ([]*Document, error)
	Count(ctx context.Context) (int64, error)
}

// ArtifactStore port for exported document renders
type ArtifactStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

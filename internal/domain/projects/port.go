package projects

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a project id does not exist in the store.
var ErrNotFound = errors.New("project not found")

// Repository port (interface for persistence)
type Repository interface {
	Save(ctx context.Context, p *Project) error
	List(ctx context.Context, limit int) ([]*Project, error)
	Get(ctx context.Context, id ProjectID) (*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id ProjectID) error
	Count(ctx context.Context) (int64, error)
}

package diagrams

import "context"

// Repository port for persisting and querying diagrams
type Repository interface {
	Save(ctx context.Context, d *Diagram) error
	ListByProject(ctx context.Context, projectID string, limit int) ([]*Diagram, error)
	Count(ctx context.Context) (int64, error)
}

package analyses

import "context"

// Repository port for persisting and querying analyses
type Repository interface {
	Save(ctx context.Context, a *Analysis) error
	ListByProject(ctx context.Context, projectID string, limit int) ([]*Analysis, error)
	Count(ctx context.Context) (int64, error)
}

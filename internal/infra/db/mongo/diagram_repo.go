package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/archadvisor/archadvisor/internal/domain/diagrams"
)

type DiagramRepository struct {
	col *mongo.Collection
}

func NewDiagramRepository(db *mongo.Database) *DiagramRepository {
	return &DiagramRepository{col: db.Collection("diagrams")}
}

func (r *DiagramRepository) Save(ctx context.Context, d *domain.Diagram) error {
	_, err := r.col.InsertOne(ctx, d)
	return err
}

func (r *DiagramRepository) ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.Diagram, error) {
	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	out := []*domain.Diagram{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DiagramRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{})
}

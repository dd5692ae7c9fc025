package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/archadvisor/archadvisor/internal/domain/analyses"
)

type AnalysisRepository struct {
	col *mongo.Collection
}

func NewAnalysisRepository(db *mongo.Database) *AnalysisRepository {
	return &AnalysisRepository{col: db.Collection("analyses")}
}

func (r *AnalysisRepository) Save(ctx context.Context, a *domain.Analysis) error {
	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *AnalysisRepository) ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.Analysis, error) {
	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	out := []*domain.Analysis{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AnalysisRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{})
}

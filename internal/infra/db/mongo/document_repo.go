package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/archadvisor/archadvisor/internal/domain/documents"
)

type DocumentRepository struct {
	col *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{col: db.Collection("documents")}
}

func (r *DocumentRepository) Save(ctx context.Context, d *domain.Document) error {
	_, err := r.col.InsertOne(ctx, d)
	return err
}

func (r *DocumentRepository) Get(ctx context.Context, id domain.DocumentID) (*domain.Document, error) {
	var d domain.Document
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DocumentRepository) ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.Document, error) {
	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	out := []*domain.Document{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DocumentRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{})
}

package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/archadvisor/archadvisor/internal/domain/prompts"
)

type PromptRepository struct {
	col *mongo.Collection
}

func NewPromptRepository(db *mongo.Database) *PromptRepository {
	return &PromptRepository{col: db.Collection("ai_prompts")}
}

func (r *PromptRepository) Save(ctx context.Context, p *domain.PromptConfig) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *PromptRepository) List(ctx context.Context, limit int) ([]*domain.PromptConfig, error) {
	cur, err := r.col.Find(ctx, bson.D{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	out := []*domain.PromptConfig{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PromptRepository) Get(ctx context.Context, id domain.PromptID) (*domain.PromptConfig, error) {
	var p domain.PromptConfig
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromptRepository) Update(ctx context.Context, p *domain.PromptConfig) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PromptRepository) Delete(ctx context.Context, id domain.PromptID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PromptRepository) ActiveByType(ctx context.Context, analysisType string) (*domain.PromptConfig, error) {
	var p domain.PromptConfig
	err := r.col.FindOne(ctx, bson.M{"analysis_type": analysisType, "is_active": true}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

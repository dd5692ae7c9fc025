package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	domain "github.com/archadvisor/archadvisor/internal/domain/prompts"
)

type PromptRepository struct {
	db *sql.DB
}

func NewPromptRepository(db *sql.DB) *PromptRepository {
	return &PromptRepository{db: db}
}

func (r *PromptRepository) Save(ctx context.Context, p *domain.PromptConfig) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	const q = `INSERT INTO ai_prompts (id, doc) VALUES ($1, $2);`
	_, err = r.db.ExecContext(ctx, q, p.ID, doc)
	return err
}

func (r *PromptRepository) List(ctx context.Context, limit int) ([]*domain.PromptConfig, error) {
	const q = `SELECT doc FROM ai_prompts ORDER BY created_at DESC, id DESC LIMIT $1;`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.PromptConfig{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var p domain.PromptConfig
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *PromptRepository) Get(ctx context.Context, id domain.PromptID) (*domain.PromptConfig, error) {
	const q = `SELECT doc FROM ai_prompts WHERE id=$1;`
	var raw []byte
	err := r.db.QueryRowContext(ctx, q, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var p domain.PromptConfig
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromptRepository) Update(ctx context.Context, p *domain.PromptConfig) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	const q = `UPDATE ai_prompts SET doc=$2 WHERE id=$1;`
	res, err := r.db.ExecContext(ctx, q, p.ID, doc)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PromptRepository) Delete(ctx context.Context, id domain.PromptID) error {
	const q = `DELETE FROM ai_prompts WHERE id=$1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PromptRepository) ActiveByType(ctx context.Context, analysisType string) (*domain.PromptConfig, error) {
	const q = `
SELECT doc FROM ai_prompts
WHERE doc->>'analysis_type' = $1 AND (doc->>'is_active')::boolean
ORDER BY created_at DESC
LIMIT 1;`
	var raw []byte
	err := r.db.QueryRowContext(ctx, q, analysisType).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var p domain.PromptConfig
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

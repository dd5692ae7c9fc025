package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	domain "github.com/archadvisor/archadvisor/internal/domain/analyses"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

func (r *AnalysisRepository) Save(ctx context.Context, a *domain.Analysis) error {
	doc, err := json.Marshal(a)
	if err != nil {
		return err
	}
	const q = `INSERT INTO analyses (id, project_id, doc) VALUES ($1, $2, $3);`
	_, err = r.db.ExecContext(ctx, q, a.ID, a.ProjectID, doc)
	return err
}

func (r *AnalysisRepository) ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.Analysis, error) {
	const q = `SELECT doc FROM analyses WHERE project_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2;`
	rows, err := r.db.QueryContext(ctx, q, projectID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Analysis{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var a domain.Analysis
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *AnalysisRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analyses;`).Scan(&n)
	return n, err
}

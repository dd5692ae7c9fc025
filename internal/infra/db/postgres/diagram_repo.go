package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	domain "github.com/archadvisor/archadvisor/internal/domain/diagrams"
)

type DiagramRepository struct {
	db *sql.DB
}

func NewDiagramRepository(db *sql.DB) *DiagramRepository {
	return &DiagramRepository{db: db}
}

func (r *DiagramRepository) Save(ctx context.Context, d *domain.Diagram) error {
	doc, err := json.Marshal(d)
	if err != nil {
		return err
	}
	const q = `INSERT INTO diagrams (id, project_id, doc) VALUES ($1, $2, $3);`
	_, err = r.db.ExecContext(ctx, q, d.ID, d.ProjectID, doc)
	return err
}

func (r *DiagramRepository) ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.Diagram, error) {
	const q = `SELECT doc FROM diagrams WHERE project_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2;`
	rows, err := r.db.QueryContext(ctx, q, projectID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Diagram{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var d domain.Diagram
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *DiagramRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM diagrams;`).Scan(&n)
	return n, err
}

package diagrams

import (
	"context"

	"github.com/google/uuid"

	"github.com/archadvisor/archadvisor/internal/application"
	domain "github.com/archadvisor/archadvisor/internal/domain/diagrams"
	"github.com/archadvisor/archadvisor/internal/infra/ai/prompt"
)

const listCap = 100

// Recommender is the slice of the advisor pipeline this service needs.
type Recommender interface {
	Recommend(ctx context.Context, prompt, contextText string) string
	Enabled() bool
}

// Service implements diagram use-cases
type Service struct {
	Repo    domain.Repository
	Advisor Recommender
	Clock   application.Clock
}

// GenerateCommand is the inbound diagram request. MermaidCode, when set,
// bypasses template resolution and is stored as-is.
type GenerateCommand struct {
	ProjectID   string `json:"project_id"`
	DiagramType string `json:"diagram_type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MermaidCode string `json:"mermaid_code"`
}

// Generate resolves a static template (or takes caller-supplied source) and
// persists the diagram.
func (s *Service) Generate(ctx context.Context, cmd GenerateCommand) (*domain.Diagram, error) {
	code := cmd.MermaidCode
	if code == "" {
		code = domain.Fill(domain.Template(cmd.DiagramType), cmd.Title, cmd.Description)
	}
	return s.persist(ctx, cmd, cmd.Title, cmd.Description, code)
}

// GenerateWithAI asks the pipeline for Mermaid source and keeps it only if
// it opens with a known grammar; anything else becomes the two-node
// fallback. With no provider configured, a canned per-type template is
// persisted instead.
func (s *Service) GenerateWithAI(ctx context.Context, cmd GenerateCommand) (*domain.Diagram, error) {
	if !s.Advisor.Enabled() {
		code := domain.DefaultTemplate(cmd.DiagramType, cmd.Title, cmd.Description)
		return s.persist(ctx, cmd,
			cmd.Title+" (Template)",
			cmd.Description+" - IA non configurée, template par défaut utilisé",
			code)
	}

	raw := s.Advisor.Recommend(ctx, prompt.DiagramPrompt(cmd.Title, cmd.Description, cmd.DiagramType), "")
	code := domain.StripFences(raw)
	if !domain.HasValidOpener(code) {
		code = domain.Fallback(cmd.Title)
	}
	return s.persist(ctx, cmd, cmd.Title, cmd.Description, code)
}

func (s *Service) persist(ctx context.Context, cmd GenerateCommand, title, description, code string) (*domain.Diagram, error) {
	d := &domain.Diagram{
		ID:          domain.DiagramID(uuid.New().String()),
		ProjectID:   cmd.ProjectID,
		DiagramType: cmd.DiagramType,
		Title:       title,
		Description: description,
		MermaidCode: code,
		CreatedAt:   application.Timestamp(s.Clock),
	}
	if err := s.Repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) ListByProject(ctx context.Context, projectID string) ([]*domain.Diagram, error) {
	return s.Repo.ListByProject(ctx, projectID, listCap)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}

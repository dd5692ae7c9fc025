package analyses

import (
	"context"

	"github.com/google/uuid"

	"github.com/archadvisor/archadvisor/internal/application"
	domain "github.com/archadvisor/archadvisor/internal/domain/analyses"
	"github.com/archadvisor/archadvisor/internal/infra/ai/prompt"
)

const listCap = 100

// Recommender is the slice of the advisor pipeline this service needs.
type Recommender interface {
	Recommend(ctx context.Context, prompt, contextText string) string
}

// Resolver resolves a prompt template for an analysis type (custom override
// or builtin).
type Resolver interface {
	Resolve(ctx context.Context, analysisType string) string
}

// Service implements the analyze use-case: resolve template, substitute
// input data, run the pipeline, persist the record.
type Service struct {
	Repo    domain.Repository
	Prompts Resolver
	Advisor Recommender
	Clock   application.Clock
}

// AnalyzeCommand is the inbound analysis request.
type AnalyzeCommand struct {
	ProjectID    string         `json:"project_id"`
	AnalysisType string         `json:"analysis_type"`
	InputData    map[string]any `json:"input_data"`
}

// Analyze always yields a persisted record with recommendation text: either
// provider output or the pipeline's fixed fallback message.
func (s *Service) Analyze(ctx context.Context, cmd AnalyzeCommand) (*domain.Analysis, error) {
	template := s.Prompts.Resolve(ctx, cmd.AnalysisType)
	userPrompt := prompt.Substitute(template, cmd.InputData)

	recommendation := s.Advisor.Recommend(ctx, userPrompt, "")

	now := application.Timestamp(s.Clock)
	a := &domain.Analysis{
		ID:           domain.AnalysisID(uuid.New().String()),
		ProjectID:    cmd.ProjectID,
		AnalysisType: cmd.AnalysisType,
		InputData:    cmd.InputData,
		Result: map[string]any{
			"analysis_type": cmd.AnalysisType,
			"input_summary": cmd.InputData,
			"timestamp":     now,
		},
		AIRecommendation: recommendation,
		CreatedAt:        now,
	}
	if err := s.Repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListByProject(ctx context.Context, projectID string) ([]*domain.Analysis, error) {
	return s.Repo.ListByProject(ctx, projectID, listCap)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}

package prompts

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/archadvisor/archadvisor/internal/application"
	domain "github.com/archadvisor/archadvisor/internal/domain/prompts"
	"github.com/archadvisor/archadvisor/internal/infra/ai/prompt"
)

const listCap = 100

// Service implements custom-prompt use-cases and the template resolution
// rule: active custom override first, builtin second, recommendation
// builtin for unknown types.
type Service struct {
	Repo  domain.Repository
	Clock application.Clock
}

// UpsertCommand carries the caller-editable prompt fields.
type UpsertCommand struct {
	AnalysisType   string `json:"analysis_type"`
	Name           string `json:"name"`
	PromptTemplate string `json:"prompt_template"`
	Language       string `json:"language"`
}

func (s *Service) Create(ctx context.Context, cmd UpsertCommand) (*domain.PromptConfig, error) {
	now := application.Timestamp(s.Clock)
	lang := cmd.Language
	if lang == "" {
		lang = "both"
	}
	p := &domain.PromptConfig{
		ID:             domain.PromptID(uuid.New().String()),
		AnalysisType:   cmd.AnalysisType,
		Name:           cmd.Name,
		PromptTemplate: cmd.PromptTemplate,
		Language:       lang,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.PromptConfig, error) {
	return s.Repo.List(ctx, listCap)
}

func (s *Service) Update(ctx context.Context, id string, cmd UpsertCommand) (*domain.PromptConfig, error) {
	existing, err := s.Repo.Get(ctx, domain.PromptID(id))
	if err != nil {
		return nil, err
	}
	existing.AnalysisType = cmd.AnalysisType
	existing.Name = cmd.Name
	existing.PromptTemplate = cmd.PromptTemplate
	if cmd.Language != "" {
		existing.Language = cmd.Language
	}
	existing.UpdatedAt = application.Timestamp(s.Clock)
	if err := s.Repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, domain.PromptID(id))
}

// Toggle flips the active flag and returns the new state. An inactive
// override no longer shadows the builtin template for its type.
func (s *Service) Toggle(ctx context.Context, id string) (bool, error) {
	existing, err := s.Repo.Get(ctx, domain.PromptID(id))
	if err != nil {
		return false, err
	}
	existing.IsActive = !existing.IsActive
	existing.UpdatedAt = application.Timestamp(s.Clock)
	if err := s.Repo.Update(ctx, existing); err != nil {
		return false, err
	}
	return existing.IsActive, nil
}

// Resolve returns the template string for an analysis type. A store miss
// or failure falls back to the builtin set; resolution never errors.
func (s *Service) Resolve(ctx context.Context, analysisType string) string {
	custom, err := s.Repo.ActiveByType(ctx, analysisType)
	if err == nil {
		return custom.PromptTemplate
	}
	if !errors.Is(err, domain.ErrNotFound) {
		log.Printf("prompts: active lookup for %q failed: %v", analysisType, err)
	}
	return prompt.Builtin(analysisType)
}

// DefaultTypes exposes the builtin type descriptors for the listing endpoint.
func (s *Service) DefaultTypes() []prompt.TypeInfo {
	return prompt.DefaultTypes()
}

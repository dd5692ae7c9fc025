package projects

import (
	"context"

	"github.com/google/uuid"

	"github.com/archadvisor/archadvisor/internal/application"
	domain "github.com/archadvisor/archadvisor/internal/domain/projects"
)

const listCap = 100

// Service implements project use-cases
type Service struct {
	Repo  domain.Repository
	Clock application.Clock
}

// UpsertCommand carries the caller-editable project fields.
type UpsertCommand struct {
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	ClientName            string   `json:"client_name"`
	Industry              string   `json:"industry"`
	BudgetRange           string   `json:"budget_range"`
	Timeline              string   `json:"timeline"`
	CurrentInfrastructure string   `json:"current_infrastructure"`
	Requirements          []string `json:"requirements"`
}

func (s *Service) Create(ctx context.Context, cmd UpsertCommand) (*domain.Project, error) {
	now := application.Timestamp(s.Clock)
	reqs := cmd.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	p := &domain.Project{
		ID:                    domain.ProjectID(uuid.New().String()),
		Name:                  cmd.Name,
		Description:           cmd.Description,
		ClientName:            cmd.ClientName,
		Industry:              cmd.Industry,
		BudgetRange:           cmd.BudgetRange,
		Timeline:              cmd.Timeline,
		CurrentInfrastructure: cmd.CurrentInfrastructure,
		Requirements:          reqs,
		Status:                "draft",
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.Repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Project, error) {
	return s.Repo.List(ctx, listCap)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.Repo.Get(ctx, domain.ProjectID(id))
}

// Update overwrites the editable fields of an existing project. Last write
// wins; there is no optimistic concurrency control.
func (s *Service) Update(ctx context.Context, id string, cmd UpsertCommand) (*domain.Project, error) {
	existing, err := s.Repo.Get(ctx, domain.ProjectID(id))
	if err != nil {
		return nil, err
	}
	existing.Name = cmd.Name
	existing.Description = cmd.Description
	existing.ClientName = cmd.ClientName
	existing.Industry = cmd.Industry
	existing.BudgetRange = cmd.BudgetRange
	existing.Timeline = cmd.Timeline
	existing.CurrentInfrastructure = cmd.CurrentInfrastructure
	if cmd.Requirements != nil {
		existing.Requirements = cmd.Requirements
	} else {
		existing.Requirements = []string{}
	}
	existing.UpdatedAt = application.Timestamp(s.Clock)
	if err := s.Repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a project. Analyses, diagrams and documents referencing it
// are left in place; there is no cascade.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, domain.ProjectID(id))
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}

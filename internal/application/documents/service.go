package documents

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/archadvisor/archadvisor/internal/application"
	domain "github.com/archadvisor/archadvisor/internal/domain/documents"
	projdomain "github.com/archadvisor/archadvisor/internal/domain/projects"
	"github.com/archadvisor/archadvisor/internal/infra/ai/prompt"
)

const listCap = 100

// Recommender is the slice of the advisor pipeline this service needs.
type Recommender interface {
	Recommend(ctx context.Context, prompt, contextText string) string
}

// ErrNoArtifactStore is returned by Export when no object store was
// configured at startup.
var ErrNoArtifactStore = errors.New("artifact store not configured")

// Service implements document use-cases
type Service struct {
	Repo      domain.Repository
	Projects  projdomain.Repository
	Advisor   Recommender
	Artifacts domain.ArtifactStore
	Clock     application.Clock
}

// GenerateCommand is the inbound document request.
type GenerateCommand struct {
	ProjectID    string   `json:"project_id"`
	TemplateType string   `json:"template_type"`
	Sections     []string `json:"sections"`
}

// Generate persists the static outline for the requested methodology.
func (s *Service) Generate(ctx context.Context, cmd GenerateCommand) (*domain.Document, error) {
	outline := domain.OutlineFor(cmd.TemplateType)
	d := &domain.Document{
		ID:           domain.DocumentID(uuid.New().String()),
		ProjectID:    cmd.ProjectID,
		TemplateType: cmd.TemplateType,
		Title:        outline.Title,
		Content:      outline,
		CreatedAt:    application.Timestamp(s.Clock),
	}
	if err := s.Repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// GenerateWithAI replaces the outline with long-form content generated from
// the stored project fields. Missing project is the only client error.
func (s *Service) GenerateWithAI(ctx context.Context, cmd GenerateCommand) (*domain.Document, error) {
	project, err := s.Projects.Get(ctx, projdomain.ProjectID(cmd.ProjectID))
	if err != nil {
		return nil, err
	}

	userPrompt := prompt.DocumentPrompt(
		cmd.TemplateType,
		project.Name,
		project.Description,
		project.Industry,
		project.CurrentInfrastructure,
		project.Requirements,
	)
	content := s.Advisor.Recommend(ctx, userPrompt, "")

	d := &domain.Document{
		ID:           domain.DocumentID(uuid.New().String()),
		ProjectID:    cmd.ProjectID,
		TemplateType: cmd.TemplateType,
		Title:        fmt.Sprintf("Document %s - %s", strings.ToUpper(cmd.TemplateType), project.Name),
		Content: map[string]any{
			"generated":  true,
			"ai_content": content,
			"project_info": map[string]any{
				"name":        project.Name,
				"description": project.Description,
			},
		},
		CreatedAt: application.Timestamp(s.Clock),
	}
	if err := s.Repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) ListByProject(ctx context.Context, projectID string) ([]*domain.Document, error) {
	return s.Repo.ListByProject(ctx, projectID, listCap)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}

// Export renders a stored document to Markdown, uploads it to the object
// store and returns the artifact URL.
func (s *Service) Export(ctx context.Context, id string) (string, error) {
	if s.Artifacts == nil {
		return "", ErrNoArtifactStore
	}
	doc, err := s.Repo.Get(ctx, domain.DocumentID(id))
	if err != nil {
		return "", err
	}
	md := renderMarkdown(doc)
	key := fmt.Sprintf("documents/%s.md", doc.ID)
	return s.Artifacts.Put(ctx, key, []byte(md), "text/markdown")
}

// renderMarkdown flattens either content shape (static outline or
// AI-generated payload) into a Markdown document. Outline sections are
// emitted in sorted key order so exports are reproducible.
func renderMarkdown(doc *domain.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", doc.Title)

	switch content := doc.Content.(type) {
	case domain.Outline:
		writeOutline(&b, content)
	case map[string]any:
		if ai, ok := content["ai_content"].(string); ok {
			b.WriteString(ai)
			b.WriteString("\n")
			break
		}
		writeOutlineMap(&b, content)
	}
	return b.String()
}

func writeOutline(b *strings.Builder, o domain.Outline) {
	keys := make([]string, 0, len(o.Sections))
	for k := range o.Sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s := o.Sections[k]
		fmt.Fprintf(b, "## %s\n\n%s\n\n", s.Title, s.Content)
	}
}

// writeOutlineMap handles outlines that round-tripped through the store
// and decoded back as generic maps.
func writeOutlineMap(b *strings.Builder, content map[string]any) {
	sections, ok := content["sections"].(map[string]any)
	if !ok {
		return
	}
	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		section, ok := sections[k].(map[string]any)
		if !ok {
			continue
		}
		title, _ := section["title"].(string)
		text, _ := section["content"].(string)
		fmt.Fprintf(b, "## %s\n\n%s\n\n", title, text)
	}
}

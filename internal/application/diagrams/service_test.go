package diagrams

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/archadvisor/archadvisor/internal/domain/diagrams"
)

type memRepo struct {
	saved []*domain.Diagram
}

func (m *memRepo) Save(_ context.Context, d *domain.Diagram) error {
	cp := *d
	m.saved = append(m.saved, &cp)
	return nil
}

func (m *memRepo) ListByProject(_ context.Context, projectID string, _ int) ([]*domain.Diagram, error) {
	out := []*domain.Diagram{}
	for _, d := range m.saved {
		if d.ProjectID == projectID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.saved)), nil
}

type stubAdvisor struct {
	enabled bool
	text    string
}

func (s *stubAdvisor) Recommend(_ context.Context, _, _ string) string { return s.text }
func (s *stubAdvisor) Enabled() bool                                   { return s.enabled }

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

func newService(adv *stubAdvisor) (*Service, *memRepo) {
	repo := &memRepo{}
	return &Service{Repo: repo, Advisor: adv, Clock: fixedClock{}}, repo
}

func TestGenerateUsesStaticTemplate(t *testing.T) {
	svc, repo := newService(&stubAdvisor{})

	d, err := svc.Generate(context.Background(), GenerateCommand{
		ProjectID:   "p1",
		DiagramType: "flowchart",
		Title:       "T",
		Description: "D",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(d.MermaidCode, "flowchart TD"))
	assert.Contains(t, d.MermaidCode, "B{Validation}")
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "2025-06-01T12:00:00Z", d.CreatedAt)
}

func TestGenerateCallerSourcePassesThrough(t *testing.T) {
	svc, _ := newService(&stubAdvisor{})

	code := "graph LR\nX-->Y"
	d, err := svc.Generate(context.Background(), GenerateCommand{
		ProjectID:   "p1",
		DiagramType: "flowchart",
		MermaidCode: code,
	})
	require.NoError(t, err)
	assert.Equal(t, code, d.MermaidCode)
}

func TestGenerateWithAIAcceptsFencedMermaid(t *testing.T) {
	svc, _ := newService(&stubAdvisor{
		enabled: true,
		text:    "```mermaid\nflowchart TD\nA-->B\n```",
	})

	d, err := svc.GenerateWithAI(context.Background(), GenerateCommand{
		ProjectID:   "p1",
		DiagramType: "flowchart",
		Title:       "Mon Flux",
	})
	require.NoError(t, err)
	assert.Equal(t, "flowchart TD\nA-->B", d.MermaidCode)
	assert.Equal(t, "Mon Flux", d.Title)
}

func TestGenerateWithAIRejectsProse(t *testing.T) {
	svc, _ := newService(&stubAdvisor{
		enabled: true,
		text:    "Voici une explication détaillée de votre architecture, sans diagramme.",
	})

	d, err := svc.GenerateWithAI(context.Background(), GenerateCommand{
		ProjectID:   "p1",
		DiagramType: "flowchart",
		Title:       "Mon Flux",
	})
	require.NoError(t, err)
	// prose fails the opener whitelist and becomes the two-node fallback
	assert.True(t, strings.HasPrefix(d.MermaidCode, "flowchart TD"))
	assert.Contains(t, d.MermaidCode, "A[Mon Flux]")
	assert.Contains(t, d.MermaidCode, "C[Résultat]")
}

func TestGenerateWithAIDisabledUsesDefaultTemplate(t *testing.T) {
	svc, repo := newService(&stubAdvisor{enabled: false})

	d, err := svc.GenerateWithAI(context.Background(), GenerateCommand{
		ProjectID:   "p1",
		DiagramType: "sequence",
		Title:       "T",
		Description: "D",
	})
	require.NoError(t, err)
	assert.Equal(t, "T (Template)", d.Title)
	assert.True(t, strings.HasPrefix(d.MermaidCode, "sequenceDiagram"))
	require.Len(t, repo.saved, 1)
}

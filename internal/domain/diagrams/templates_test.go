package diagrams

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateFlowchartSkeleton(t *testing.T) {
	got := Fill(Template("flowchart"), "T", "D")
	assert.True(t, strings.HasPrefix(got, "flowchart TD"))
	assert.Contains(t, got, "B{Validation}")
	assert.Contains(t, got, "G")
	assert.Contains(t, got, "T")
	assert.Contains(t, got, "D")
}

func TestTemplateUnknownTypeFallsBackToFlowchart(t *testing.T) {
	assert.Equal(t, Template("flowchart"), Template("no_such_type"))
	assert.Equal(t, Template("flowchart"), Template(""))
}

func TestFillInterpolatesPlaceholders(t *testing.T) {
	got := Fill(Template("c4_context"), "Mon Système", "Description du système")
	assert.Contains(t, got, `System(system, "Mon Système", "Description du système")`)
	assert.NotContains(t, got, "{title}")
	assert.NotContains(t, got, "{description}")
}

func TestHasValidOpener(t *testing.T) {
	assert.True(t, HasValidOpener("flowchart TD\nA-->B"))
	assert.True(t, HasValidOpener("  sequenceDiagram\n..."))
	assert.True(t, HasValidOpener("C4Context\ntitle X"))
	assert.True(t, HasValidOpener("graph LR\nA-->B"))

	assert.False(t, HasValidOpener("Voici un diagramme pour votre projet:"))
	assert.False(t, HasValidOpener(""))
}

func TestStripFences(t *testing.T) {
	wrapped := "```mermaid\nflowchart TD\nA-->B\n```"
	assert.Equal(t, "flowchart TD\nA-->B", StripFences(wrapped))

	bare := "```\ngraph LR\nA-->B\n```"
	assert.Equal(t, "graph LR\nA-->B", StripFences(bare))

	plain := "flowchart TD\nA-->B"
	assert.Equal(t, plain, StripFences(plain))
}

func TestFallbackTwoNodes(t *testing.T) {
	got := Fallback("Mon Titre")
	assert.True(t, strings.HasPrefix(got, "flowchart TD"))
	assert.Contains(t, got, "A[Mon Titre]")
	assert.Contains(t, got, "C[Résultat]")
}

func TestDefaultTemplateByType(t *testing.T) {
	assert.True(t, strings.HasPrefix(DefaultTemplate("sequence", "T", "D"), "sequenceDiagram"))
	assert.Contains(t, DefaultTemplate("c4_context", "T", "D"), `System(sys, "T", "D")`)
	// everything else gets the flowchart default
	assert.True(t, strings.HasPrefix(DefaultTemplate("gantt", "T", "D"), "flowchart TD"))
}

package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archadvisor/archadvisor/internal/domain/ai"
)

type stubClient struct {
	text  string
	err   error
	calls int
	got   string
}

func (s *stubClient) Complete(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.got = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func TestRecommendNoProvider(t *testing.T) {
	svc := New(Config{Provider: ai.ProviderNone})

	got := svc.Recommend(context.Background(), "any prompt", "")
	assert.Equal(t, FallbackMessage, got)
	assert.False(t, svc.Enabled())
}

func TestRecommendGroqSuccess(t *testing.T) {
	groq := &stubClient{text: "réponse groq"}
	openai := &stubClient{text: "réponse openai"}
	svc := New(Config{Provider: ai.ProviderGroq, Groq: groq, OpenAI: openai})

	got := svc.Recommend(context.Background(), "prompt", "")
	assert.Equal(t, "réponse groq", got)
	assert.Equal(t, 1, groq.calls)
	assert.Zero(t, openai.calls, "openai must not be called when groq answers")
}

func TestRecommendGroqFailureFallsBackToOpenAI(t *testing.T) {
	groq := &stubClient{err: errors.New("quota exceeded")}
	openai := &stubClient{text: "réponse openai"}
	svc := New(Config{Provider: ai.ProviderGroq, Groq: groq, OpenAI: openai})

	got := svc.Recommend(context.Background(), "prompt", "")
	assert.Equal(t, "réponse openai", got)
	assert.Equal(t, 1, groq.calls)
	assert.Equal(t, 1, openai.calls)
}

func TestRecommendBothFail(t *testing.T) {
	groq := &stubClient{err: errors.New("network")}
	openai := &stubClient{err: errors.New("auth")}
	svc := New(Config{Provider: ai.ProviderGroq, Groq: groq, OpenAI: openai})

	got := svc.Recommend(context.Background(), "prompt", "")
	assert.Equal(t, FallbackMessage, got)
	// exactly one attempt per provider, no retries
	assert.Equal(t, 1, groq.calls)
	assert.Equal(t, 1, openai.calls)
}

func TestRecommendOpenAISelected(t *testing.T) {
	openai := &stubClient{text: "réponse openai"}
	svc := New(Config{Provider: ai.ProviderOpenAI, OpenAI: openai})

	got := svc.Recommend(context.Background(), "prompt", "")
	assert.Equal(t, "réponse openai", got)
	assert.True(t, svc.Enabled())
}

func TestRecommendPrependsContext(t *testing.T) {
	groq := &stubClient{text: "ok"}
	svc := New(Config{Provider: ai.ProviderGroq, Groq: groq})

	svc.Recommend(context.Background(), "question", "contexte projet")
	require.Equal(t, "contexte projet\n\nquestion", groq.got)

	svc.Recommend(context.Background(), "question", "")
	require.Equal(t, "question", groq.got)
}

package groq

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/archadvisor/archadvisor/internal/infra/ai/prompt"
)

// Groq serves an OpenAI-compatible chat API, so the client is go-openai
// pointed at the Groq endpoint.
const (
	baseURL      = "https://api.groq.com/openai/v1"
	defaultModel = "llama-3.3-70b-versatile"
	temperature  = 0.7
	maxTokens    = 2000
)

type Client struct {
	api   *openai.Client
	model string
}

func NewClient(apiKey, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	if model == "" {
		model = defaultModel
	}
	return &Client{api: openai.NewClientWithConfig(cfg), model: model}
}

// Complete issues a single chat completion. No retries; the caller owns the
// fallback chain.
func (c *Client) Complete(ctx context.Context, userPrompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

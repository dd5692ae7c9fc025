package ai

import "context"

// Client is an outbound chat-completion provider. Implementations carry
// their own model configuration and system prompt.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

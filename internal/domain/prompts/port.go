package prompts

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a prompt id does not exist in the store.
var ErrNotFound = errors.New("prompt not found")

// Repository port for persisting and querying custom prompts
type Repository interface {
	Save(ctx context.Context, p *PromptConfig) error
	List(ctx context.Context, limit int) ([]*PromptConfig, error)
	Get(ctx context.Context, id PromptID) (*PromptConfig, error)
	Update(ctx context.Context, p *PromptConfig) error
	Delete(ctx context.Context, id PromptID) error

	// ActiveByType returns the active override for an analysis type,
	// or ErrNotFound when none is active.
	ActiveByType(ctx context.Context, analysisType string) (*PromptConfig, error)
}

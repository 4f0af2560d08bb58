package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
)

// Backend is the narrow port to the generative-text collaborator: one
// synchronous completion per call, no streaming. The pipeline depends
// only on this interface so tests can substitute deterministic fakes.
type Backend interface {
	// Complete sends a prompt and returns the generated text
	Complete(ctx context.Context, prompt string) (string, error)
}

// ModelBackend implements Backend on top of an Eino ChatModel created
// by a Provider, with retry on transient failures
type ModelBackend struct {
	provider Provider
	retry    RetryConfig
}

// NewBackend creates a ModelBackend
func NewBackend(provider Provider, retry RetryConfig) *ModelBackend {
	return &ModelBackend{provider: provider, retry: retry}
}

// Complete sends the prompt as a single user message and returns the
// trimmed response content
func (b *ModelBackend) Complete(ctx context.Context, prompt string) (string, error) {
	chatModel, err := b.provider.CreateChatModel(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create chat model (provider: %s): %w", b.provider.Name(), err)
	}

	messages := []*schema.Message{
		schema.UserMessage(prompt),
	}

	response, err := WithRetryResult(ctx, b.retry, func() (*schema.Message, error) {
		return chatModel.Generate(ctx, messages)
	})
	if err != nil {
		return "", fmt.Errorf("completion failed (provider: %s): %w", b.provider.Name(), err)
	}
	if response == nil {
		return "", nil
	}

	return strings.TrimSpace(response.Content), nil
}

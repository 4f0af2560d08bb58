package llm

import (
	"context"

	"github.com/cloudwego/eino/components/model"

	"github.com/gitscribe/gitscribe/internal/config"
)

// Provider creates chat models for a configured generative backend
type Provider interface {
	// Name returns the provider name
	Name() string

	// CreateChatModel creates an Eino ChatModel instance
	CreateChatModel(ctx context.Context) (model.ChatModel, error)
}

// NewProvider creates a Provider for the configured backend
func NewProvider(cfg config.Config) (Provider, error) {
	return newProvider(cfg)
}

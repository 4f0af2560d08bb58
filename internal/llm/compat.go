package llm

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"github.com/gitscribe/gitscribe/internal/config"
)

// Default API base URLs for the OpenAI-compatible providers
const (
	DeepseekDefaultBaseURL = "https://api.deepseek.com/v1"
	GrokDefaultBaseURL     = "https://api.x.ai/v1"
	OllamaDefaultBaseURL   = "http://localhost:11434/v1"
)

// CompatProvider implements Provider for backends exposing an
// OpenAI-compatible API (deepseek, grok, ollama)
type CompatProvider struct {
	name string
	cfg  config.Config
}

// NewCompatProvider creates a provider for an OpenAI-compatible backend
// with the given default base URL
func NewCompatProvider(name, defaultBaseURL string, cfg config.Config) *CompatProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &CompatProvider{name: name, cfg: cfg}
}

// NewOllamaProvider creates a provider for a local Ollama instance.
// Ollama does not require an API key; a placeholder is used.
func NewOllamaProvider(cfg config.Config) *CompatProvider {
	if cfg.APIKey == "" {
		cfg.APIKey = "ollama"
	}
	return NewCompatProvider("ollama", OllamaDefaultBaseURL, cfg)
}

// Name returns the provider name
func (p *CompatProvider) Name() string {
	return p.name
}

// CreateChatModel creates an Eino ChatModel over the compatible API
func (p *CompatProvider) CreateChatModel(ctx context.Context) (model.ChatModel, error) {
	cfg := &openai.ChatModelConfig{
		APIKey:  p.cfg.APIKey,
		Model:   p.cfg.Model,
		BaseURL: p.cfg.BaseURL,
	}

	return openai.NewChatModel(ctx, cfg)
}

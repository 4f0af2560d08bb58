package llm

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"

	"github.com/gitscribe/gitscribe/internal/config"
)

// GeminiProvider implements Provider for Google Gemini
type GeminiProvider struct {
	cfg config.Config
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(cfg config.Config) *GeminiProvider {
	return &GeminiProvider{cfg: cfg}
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// CreateChatModel creates an Eino ChatModel for Gemini
func (p *GeminiProvider) CreateChatModel(ctx context.Context) (model.ChatModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: p.cfg.APIKey,
	})
	if err != nil {
		return nil, err
	}

	cfg := &gemini.Config{
		Client: client,
		Model:  p.cfg.Model,
	}

	return gemini.NewChatModel(ctx, cfg)
}

package llm

import (
	"fmt"

	"github.com/gitscribe/gitscribe/internal/config"
)

// newProvider selects a Provider implementation by the configured
// provider name
func newProvider(cfg config.Config) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(cfg), nil
	case "deepseek":
		return NewCompatProvider("deepseek", DeepseekDefaultBaseURL, cfg), nil
	case "ollama":
		return NewOllamaProvider(cfg), nil
	case "grok":
		return NewCompatProvider("grok", GrokDefaultBaseURL, cfg), nil
	case "gemini":
		return NewGeminiProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}

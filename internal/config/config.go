package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/gitscribe/gitscribe/internal/log"
)

// FileName is the configuration file name looked up in the repository
// root and in the user's home directory.
const FileName = ".gitscribe.conf"

// Supported backend providers
var supportedProviders = map[string]bool{
	"openai":   true,
	"deepseek": true,
	"ollama":   true,
	"gemini":   true,
	"grok":     true,
}

// SupportedProviders returns a list of supported backend providers
func SupportedProviders() []string {
	providers := make([]string, 0, len(supportedProviders))
	for p := range supportedProviders {
		providers = append(providers, p)
	}
	return providers
}

// knownKeys is the closed set of configuration keys. Anything else in a
// config file is reported and ignored.
var knownKeys = map[string]bool{
	"model":    true,
	"verbose":  true,
	"provider": true,
	"api_key":  true,
	"base_url": true,
	"language": true,
}

// Config is the resolved application configuration. It is built once at
// the start of an invocation and passed by value into the pipeline;
// nothing in the pipeline reads ambient process state.
type Config struct {
	Model    string // model name sent to the backend (required)
	Verbose  bool   // step-by-step trace output
	Provider string // backend provider (default: openai)
	APIKey   string // backend API key, supports ${ENV} expansion
	BaseURL  string // backend base URL override
	Language string // output language code (default: en)
}

// Validate validates the resolved configuration
func (c Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if !supportedProviders[c.Provider] {
		return fmt.Errorf("unsupported provider: %s (supported: %s)",
			c.Provider, strings.Join(SupportedProviders(), ", "))
	}
	// API key is required for all providers except ollama
	if c.Provider != "ollama" && c.APIKey == "" {
		return fmt.Errorf("api_key is required for provider %s", c.Provider)
	}
	return nil
}

// Load resolves the configuration from the layered sources. When
// customPath is set it is used exclusively; otherwise the home file is
// read first and the repository file merged over it, so the repository
// overrides only the keys it sets. Both files are optional. A malformed
// file fails the whole load.
func Load(customPath, repoRoot string) (Config, error) {
	v := viper.New()
	v.SetConfigType("dotenv")

	if customPath != "" {
		v.SetConfigFile(customPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", customPath, err)
		}
		return fromViper(v)
	}

	paths := make([]string, 0, 2)
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, FileName))
	}
	if repoRoot != "" {
		paths = append(paths, filepath.Join(repoRoot, FileName))
	}

	loaded := false
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		v.SetConfigFile(path)
		if !loaded {
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			loaded = true
			continue
		}
		if err := v.MergeInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to merge config file %s: %w", path, err)
		}
	}

	return fromViper(v)
}

// fromViper converts loaded settings into a Config, rejecting invalid
// values for known keys and reporting unknown ones.
func fromViper(v *viper.Viper) (Config, error) {
	for _, key := range v.AllKeys() {
		if !knownKeys[key] {
			log.Warn("ignoring unknown configuration key: %s", key)
		}
	}

	cfg := Config{
		Provider: "openai",
		Language: "en",
	}

	if v.IsSet("model") {
		cfg.Model = strings.TrimSpace(v.GetString("model"))
		if cfg.Model == "" {
			return Config{}, fmt.Errorf("model must not be empty")
		}
	}
	if v.IsSet("verbose") {
		verbose, err := strconv.ParseBool(strings.TrimSpace(v.GetString("verbose")))
		if err != nil {
			return Config{}, fmt.Errorf("verbose must be true or false, got %q", v.GetString("verbose"))
		}
		cfg.Verbose = verbose
	}
	if v.IsSet("provider") {
		cfg.Provider = strings.TrimSpace(v.GetString("provider"))
	}
	if v.IsSet("api_key") {
		cfg.APIKey = expandEnv(strings.TrimSpace(v.GetString("api_key")))
	}
	if v.IsSet("base_url") {
		cfg.BaseURL = strings.TrimSpace(v.GetString("base_url"))
	}
	if v.IsSet("language") {
		cfg.Language = strings.TrimSpace(v.GetString("language"))
	}

	return cfg, nil
}

// expandEnv expands environment variables in the format ${VAR} or $VAR
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	if strings.HasPrefix(s, "$") {
		return os.Getenv(s[1:])
	}
	return s
}

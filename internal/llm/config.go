package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderGemini     = "gemini"
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the backend: "gemini", "anthropic", "openai",
	// "openrouter" or "mock".
	Provider string

	Gemini     GeminiConfig
	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single logical request including retries.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional, for OpenAI-compatible gateways.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config targeting Gemini 2.5 Flash.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderGemini,
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     8 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// env reads a BASMACH_-prefixed variable.
func env(name string) string {
	return strings.TrimSpace(os.Getenv("BASMACH_" + name))
}

// credentials points at the key and model fields of one provider.
type credentials struct {
	key, model *string
}

func (c *Config) credentials(provider string) (credentials, bool) {
	switch provider {
	case ProviderGemini:
		return credentials{&c.Gemini.APIKey, &c.Gemini.Model}, true
	case ProviderAnthropic:
		return credentials{&c.Anthropic.APIKey, &c.Anthropic.Model}, true
	case ProviderOpenAI:
		return credentials{&c.OpenAI.APIKey, &c.OpenAI.Model}, true
	case ProviderOpenRouter:
		return credentials{&c.OpenRouter.APIKey, &c.OpenRouter.Model}, true
	}
	return credentials{}, false
}

var keyedProviders = []string{ProviderGemini, ProviderAnthropic, ProviderOpenAI, ProviderOpenRouter}

// ConfigFromEnv overlays BASMACH_* variables on DefaultConfig:
// LLM_PROVIDER, LLM_TIMEOUT, OPENAI_BASE_URL and <PROVIDER>_API_KEY /
// <PROVIDER>_MODEL for each backend.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := env("LLM_PROVIDER"); p != "" {
		cfg.Provider = strings.ToLower(p)
	}
	if d, err := time.ParseDuration(env("LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	for _, name := range keyedProviders {
		creds, _ := cfg.credentials(name)
		prefix := strings.ToUpper(name) + "_"
		if k := env(prefix + "API_KEY"); k != "" {
			*creds.key = k
		}
		if m := env(prefix + "MODEL"); m != "" {
			*creds.model = m
		}
	}
	if u := env("OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}
	return cfg
}

// discoveryOrder lists the vendors' own key variables by priority. A bare
// API_KEY is taken as a Gemini key.
var discoveryOrder = []struct{ variable, provider string }{
	{"GEMINI_API_KEY", ProviderGemini},
	{"API_KEY", ProviderGemini},
	{"OPENAI_API_KEY", ProviderOpenAI},
	{"ANTHROPIC_API_KEY", ProviderAnthropic},
	{"OPENROUTER_API_KEY", ProviderOpenRouter},
}

// DiscoverConfig returns a default Config for the first vendor key variable
// that is set.
func DiscoverConfig() (Config, bool) {
	for _, d := range discoveryOrder {
		k := os.Getenv(d.variable)
		if k == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = d.provider
		creds, _ := cfg.credentials(d.provider)
		*creds.key = k
		return cfg, true
	}
	return Config{}, false
}

// ResolveConfig prefers a complete BASMACH_* configuration. An explicit
// BASMACH_LLM_PROVIDER that is incomplete is an error; otherwise vendor keys
// are discovered.
func ResolveConfig() (Config, error) {
	cfg := ConfigFromEnv()
	err := cfg.Validate()
	if err == nil {
		return cfg, nil
	}
	if env("LLM_PROVIDER") != "" {
		return Config{}, err
	}
	if discovered, ok := DiscoverConfig(); ok {
		discovered.Timeout = cfg.Timeout
		return discovered, nil
	}
	return Config{}, fmt.Errorf("no LLM API key found: set GEMINI_API_KEY or BASMACH_LLM_PROVIDER with its API key")
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	creds, ok := c.credentials(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *creds.key == "" {
		return fmt.Errorf("BASMACH_%s_API_KEY is required for the %s provider", strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}

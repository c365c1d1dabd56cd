package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which backend serves requests.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single call including retries. Chat replies should
	// come back while the child is still looking at the screen.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string
	Model   string // Default: "claude-sonnet"
	BaseURL string // Optional, for proxies and tests.
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "anthropic/claude-sonnet-4.5"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
	AppName string // Sent as X-Title for OpenRouter's usage dashboard.
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config using Anthropic for all calls.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  AnthropicConfig{Model: "claude-sonnet"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "anthropic/claude-sonnet-4.5", AppName: "Kosmi"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from KOSMI_* environment variables, falling
// back to defaults for unset values. When KOSMI_LLM_PROVIDER is unset the
// vendor's standard key variable (ANTHROPIC_API_KEY and friends) is probed.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setString(&cfg.Provider, "KOSMI_LLM_PROVIDER")
	setDuration(&cfg.Timeout, "KOSMI_LLM_TIMEOUT")
	setInt(&cfg.Retry.MaxAttempts, "KOSMI_LLM_MAX_ATTEMPTS")

	setString(&cfg.Anthropic.APIKey, "KOSMI_ANTHROPIC_API_KEY")
	setString(&cfg.Anthropic.Model, "KOSMI_ANTHROPIC_MODEL")
	setString(&cfg.Anthropic.BaseURL, "KOSMI_ANTHROPIC_BASE_URL")

	setString(&cfg.OpenAI.APIKey, "KOSMI_OPENAI_API_KEY")
	setString(&cfg.OpenAI.Model, "KOSMI_OPENAI_MODEL")
	setString(&cfg.OpenAI.BaseURL, "KOSMI_OPENAI_BASE_URL")

	setString(&cfg.Gemini.APIKey, "KOSMI_GEMINI_API_KEY")
	setString(&cfg.Gemini.Model, "KOSMI_GEMINI_MODEL")

	setString(&cfg.OpenRouter.APIKey, "KOSMI_OPENROUTER_API_KEY")
	setString(&cfg.OpenRouter.Model, "KOSMI_OPENROUTER_MODEL")
	setString(&cfg.OpenRouter.BaseURL, "KOSMI_OPENROUTER_BASE_URL")

	if os.Getenv("KOSMI_LLM_PROVIDER") == "" && cfg.Validate() != nil {
		if discovered, ok := discover(cfg); ok {
			return discovered
		}
	}
	return cfg
}

// discover probes the vendors' standard API key variables in priority order
// (Anthropic, OpenAI, Gemini, OpenRouter) and selects the first one set.
func discover(cfg Config) (Config, bool) {
	probes := []struct {
		env      string
		provider string
		key      *string
	}{
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &cfg.Anthropic.APIKey},
		{"OPENAI_API_KEY", ProviderOpenAI, &cfg.OpenAI.APIKey},
		{"GEMINI_API_KEY", ProviderGemini, &cfg.Gemini.APIKey},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.key = k
			return cfg, true
		}
	}
	return cfg, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case ProviderAnthropic:
		key, env = c.Anthropic.APIKey, "KOSMI_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, env = c.OpenAI.APIKey, "KOSMI_OPENAI_API_KEY"
	case ProviderGemini:
		key, env = c.Gemini.APIKey, "KOSMI_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, env = c.OpenRouter.APIKey, "KOSMI_OPENROUTER_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func setInt(dst *int, env string) {
	if v, err := strconv.Atoi(os.Getenv(env)); err == nil && v > 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, env string) {
	if v, err := time.ParseDuration(os.Getenv(env)); err == nil && v > 0 {
		*dst = v
	}
}

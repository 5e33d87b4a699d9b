package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically. An empty
// llm.model is replaced with the provider default.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))

	switch l.Provider {
	case ProviderOpenAI:
		if l.Model == "" {
			l.Model = DefaultOpenAIModel
		}
	case ProviderAnthropic:
		if l.Model == "" {
			l.Model = DefaultAnthropicModel
		}
	default:
		return fmt.Errorf("provider must be %q or %q (got %q)", ProviderOpenAI, ProviderAnthropic, l.Provider)
	}

	if strings.TrimSpace(l.APIKey) == "" {
		return fmt.Errorf("api_key is required")
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %v)", l.RequestTimeout)
	}
	if l.MaxRetries > 0 && l.RetryBaseDelay <= 0 {
		return fmt.Errorf("retry_base_delay must be > 0 when retries are enabled (got %v)", l.RetryBaseDelay)
	}

	return nil
}

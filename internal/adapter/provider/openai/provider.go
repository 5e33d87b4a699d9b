package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	sdk "github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/relnotes-backend/internal/config"
	"github.com/heartmarshall/relnotes-backend/internal/provider"
)

const providerName = "openai"

// Provider sends prompts to the OpenAI chat completions API.
type Provider struct {
	client    *sdk.Client
	model     string
	maxTokens int
	log       *slog.Logger
}

// NewProvider creates a Provider from LLMConfig. BaseURL, when set, replaces
// the public endpoint (used for OpenAI-compatible gateways and tests).
func NewProvider(cfg config.LLMConfig, logger *slog.Logger) *Provider {
	clientCfg := sdk.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	// Per-attempt deadlines come from the caller's context; this only guards
	// against a stuck connection.
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.RequestTimeout + 5*time.Second}

	return &Provider{
		client:    sdk.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: int(cfg.MaxTokens),
		log:       logger.With("adapter", providerName),
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string { return providerName }

// Complete sends prompt as a single user message and returns the first
// choice's content.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	p.log.DebugContext(ctx, "openai request",
		slog.String("model", p.model),
		slog.Int("prompt_len", len(prompt)),
	)

	resp, err := p.client.CreateChatCompletion(ctx, sdk.ChatCompletionRequest{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		Messages: []sdk.ChatCompletionMessage{
			{Role: sdk.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", provider.Failed(classify(err))
	}

	if len(resp.Choices) == 0 {
		return "", provider.Failed(errors.New("openai returned no choices"))
	}

	p.log.DebugContext(ctx, "openai response",
		slog.String("finish_reason", string(resp.Choices[0].FinishReason)),
		slog.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	return resp.Choices[0].Message.Content, nil
}

// classify lifts HTTP status information out of SDK errors so that retry
// decisions can be made without knowing the SDK.
func classify(err error) error {
	var apiErr *sdk.APIError
	if errors.As(err, &apiErr) {
		return &provider.StatusError{Provider: providerName, StatusCode: apiErr.HTTPStatusCode, Err: err}
	}
	var reqErr *sdk.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &provider.StatusError{Provider: providerName, StatusCode: reqErr.HTTPStatusCode, Err: err}
	}
	return fmt.Errorf("openai: %w", err)
}

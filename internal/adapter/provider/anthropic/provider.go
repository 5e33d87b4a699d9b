package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/relnotes-backend/internal/config"
	"github.com/heartmarshall/relnotes-backend/internal/provider"
)

const providerName = "anthropic"

// Provider sends prompts to the Anthropic Messages API.
type Provider struct {
	client    sdk.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewProvider creates a Provider from LLMConfig. SDK-level retries are
// disabled; retrying is done by the completion client.
func NewProvider(cfg config.LLMConfig, logger *slog.Logger) *Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Provider{
		client:    sdk.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", providerName),
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string { return providerName }

// Complete sends prompt as a single user message and returns the text of the
// first text block of the reply.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	p.log.DebugContext(ctx, "anthropic request",
		slog.String("model", p.model),
		slog.Int("prompt_len", len(prompt)),
	)

	msg, err := p.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(p.model),
		MaxTokens: p.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", provider.Failed(classify(err))
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			p.log.DebugContext(ctx, "anthropic response",
				slog.String("stop_reason", string(msg.StopReason)),
				slog.Int64("output_tokens", msg.Usage.OutputTokens),
			)
			return block.Text, nil
		}
	}

	return "", provider.Failed(errors.New("anthropic returned no text content"))
}

func classify(err error) error {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		return &provider.StatusError{Provider: providerName, StatusCode: apiErr.StatusCode, Err: err}
	}
	return fmt.Errorf("anthropic: %w", err)
}

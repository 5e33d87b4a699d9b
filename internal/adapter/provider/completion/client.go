package completion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/relnotes-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/relnotes-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/relnotes-backend/internal/config"
	"github.com/heartmarshall/relnotes-backend/internal/provider"
)

// backend is a single completion API adapter.
type backend interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client wraps a provider adapter with a per-attempt timeout and bounded
// exponential retry on transient failures. It holds no mutable state and is
// safe for concurrent use.
type Client struct {
	backend    backend
	timeout    time.Duration
	maxRetries uint64
	baseDelay  time.Duration
	log        *slog.Logger
}

// New creates a Client for the provider named in cfg. cfg is expected to have
// passed config validation.
func New(cfg config.LLMConfig, logger *slog.Logger) (*Client, error) {
	var b backend
	switch cfg.Provider {
	case config.ProviderOpenAI:
		b = openai.NewProvider(cfg, logger)
	case config.ProviderAnthropic:
		b = anthropic.NewProvider(cfg, logger)
	default:
		return nil, fmt.Errorf("completion: unknown provider %q", cfg.Provider)
	}
	return newClient(b, cfg, logger), nil
}

func newClient(b backend, cfg config.LLMConfig, logger *slog.Logger) *Client {
	return &Client{
		backend:    b,
		timeout:    cfg.RequestTimeout,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.RetryBaseDelay,
		log:        logger.With("component", "completion", "provider", b.Name()),
	}
}

var (
	sharedOnce   sync.Once
	sharedClient *Client
	sharedErr    error
)

// Shared returns the process-wide Client, creating it on first use. Later
// calls ignore their arguments and return the same instance.
func Shared(cfg config.LLMConfig, logger *slog.Logger) (*Client, error) {
	sharedOnce.Do(func() {
		sharedClient, sharedErr = New(cfg, logger)
	})
	return sharedClient, sharedErr
}

// Provider returns the name of the underlying completion API.
func (c *Client) Provider() string { return c.backend.Name() }

// Complete sends prompt to the completion API and returns the raw text.
// Errors always match provider.ErrCompletionFailed. With no retries
// configured the backend is called exactly once.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.maxRetries == 0 {
		text, err := c.attempt(ctx, prompt)
		if err != nil {
			return "", ensureFailed(err)
		}
		return text, nil
	}

	b := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.baseDelay))

	var (
		text    string
		attempt int
	)
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++

		out, err := c.attempt(ctx, prompt)
		if err != nil {
			if c.retryable(ctx, err) {
				c.log.WarnContext(ctx, "completion attempt failed, retrying",
					slog.Int("attempt", attempt),
					slog.String("error", err.Error()),
				)
				return retry.RetryableError(err)
			}
			return err
		}
		text = out
		return nil
	})
	if err != nil {
		return "", ensureFailed(err)
	}

	return text, nil
}

// attempt makes one backend call bounded by the per-attempt timeout.
func (c *Client) attempt(ctx context.Context, prompt string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.backend.Complete(attemptCtx, prompt)
}

// retryable reports whether err is worth another attempt. A deadline hit by
// the per-attempt timeout counts as transient while the caller's ctx is live.
func (c *Client) retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return provider.IsTransient(err)
}

// ensureFailed makes err match provider.ErrCompletionFailed. Context
// cancellation between attempts surfaces as a bare ctx error.
func ensureFailed(err error) error {
	if !errors.Is(err, provider.ErrCompletionFailed) {
		return provider.Failed(err)
	}
	return err
}

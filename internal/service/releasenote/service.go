package releasenote

import (
	"context"
	"log/slog"
)

// completer is the completion API as seen by the service.
type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service generates per-platform, per-language release notes.
type Service struct {
	llm completer
	log *slog.Logger
}

// NewService creates a new release note service.
func NewService(
	log *slog.Logger,
	llm completer,
) *Service {
	return &Service{
		llm: llm,
		log: log.With("service", "releasenote"),
	}
}

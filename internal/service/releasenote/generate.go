package releasenote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/relnotes-backend/internal/domain"
	"github.com/heartmarshall/relnotes-backend/internal/service/releasenote/notes"
)

// Generate builds a prompt, calls the completion API and parses the reply for
// every selected platform. Platforms run concurrently and independently: a
// failing platform is recorded in Result.Failures and never cancels the other.
//
// The returned error is non-nil only for invalid input or when every
// selected platform failed; in the latter case the Result is still returned.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Selection: input.Selection,
		Failures:  make(map[domain.Platform]error),
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	for _, p := range input.Selection.Platforms() {
		g.Go(func() error {
			err := s.generatePlatform(ctx, p, input.Request, result, &mu)
			if err != nil {
				mu.Lock()
				result.Failures[p] = err
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(result.Succeeded()) == 0 {
		errs := make([]error, 0, len(result.Failures))
		for _, p := range input.Selection.Platforms() {
			errs = append(errs, fmt.Errorf("%s: %w", p, result.Failures[p]))
		}
		return result, errors.Join(errs...)
	}

	return result, nil
}

func (s *Service) generatePlatform(
	ctx context.Context,
	p domain.Platform,
	req domain.ReleaseNoteRequest,
	result *Result,
	mu *sync.Mutex,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during %s generation: %v", p, r)
		}
	}()

	start := time.Now()
	languages := req.Languages(p)

	var prompt string
	switch p {
	case domain.PlatformIOS:
		prompt = notes.BuildIOSPrompt(req.Content, req.BaseLanguage, languages)
	case domain.PlatformAndroid:
		prompt = notes.BuildAndroidPrompt(req.Content, req.BaseLanguage, languages)
	default:
		return fmt.Errorf("unsupported platform %q", p)
	}

	text, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return fmt.Errorf("complete %s notes: %w", p, err)
	}

	var produced int
	switch p {
	case domain.PlatformIOS:
		parsed := parseSafely(s.log, p, func() domain.IOSNotes { return notes.ParseIOS(text) }, domain.IOSNotes{})
		produced = len(parsed)
		mu.Lock()
		result.IOS = parsed
		mu.Unlock()
	case domain.PlatformAndroid:
		parsed := parseSafely(s.log, p, func() domain.AndroidNotes { return notes.ParseAndroid(text) }, domain.AndroidNotes{})
		produced = len(parsed.Entries)
		mu.Lock()
		result.Android = &parsed
		mu.Unlock()
	}

	requested := len(domain.ParseLanguageList(languages))
	if produced == 0 {
		s.log.WarnContext(ctx, "completion produced no parsable notes",
			slog.String("platform", p.String()),
			slog.Int("response_len", len(text)),
		)
	}

	s.log.InfoContext(ctx, "release notes generated",
		slog.String("platform", p.String()),
		slog.Int("languages_requested", requested),
		slog.Int("languages_produced", produced),
		slog.Duration("duration", time.Since(start)),
	)

	return nil
}

// parseSafely runs parse and degrades to empty if it panics. Parsing must
// never take down a request.
func parseSafely[T any](log *slog.Logger, p domain.Platform, parse func() T, empty T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("release note parser panicked",
				slog.String("platform", p.String()),
				slog.Any("panic", r),
			)
			out = empty
		}
	}()
	return parse()
}

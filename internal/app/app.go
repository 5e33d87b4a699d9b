package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/relnotes-backend/internal/adapter/provider/completion"
	"github.com/heartmarshall/relnotes-backend/internal/config"
	"github.com/heartmarshall/relnotes-backend/internal/service/releasenote"
	"github.com/heartmarshall/relnotes-backend/internal/transport/middleware"
	"github.com/heartmarshall/relnotes-backend/internal/transport/rest"
)

// completionClient is what the router needs from the completion API client.
type completionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Provider() string
}

// Run is the application entry point. It loads configuration, builds the
// completion client and HTTP handlers, and serves until ctx is cancelled,
// then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	llm, err := completion.Shared(cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("init completion client: %w", err)
	}

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", llm.Provider()),
		slog.String("llm_model", cfg.LLM.Model),
	)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           NewRouter(cfg, logger, llm),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// NewRouter wires the release note service and health endpoints behind the
// middleware chain. Generation routes accept any method so that the handler
// can answer non-POST requests with the JSON 405 body.
func NewRouter(cfg *config.Config, logger *slog.Logger, llm completionClient) http.Handler {
	svc := releasenote.NewService(logger, llm)

	generate := rest.NewGenerateHandler(svc, logger, cfg.Server.MaxBodyBytes)
	health := rest.NewHealthHandler(BuildVersion(), llm.Provider())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate-ios", generate.IOS)
	mux.HandleFunc("/api/generate-android", generate.Android)
	mux.HandleFunc("/api/generate", generate.Combined)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /health", health.Health)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/relnotes-backend/internal/config"
	"github.com/heartmarshall/relnotes-backend/internal/transport/middleware"
	"github.com/heartmarshall/relnotes-backend/pkg/ctxutil"
)

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})

	if slog.Default().Handler() != logger.Handler() {
		t.Error("NewLogger should set the returned logger as slog default")
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		wantSlog slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(newHandler(&buf, config.LogConfig{Level: tt.level, Format: "text"}))

			logger.Log(context.Background(), tt.wantSlog, "should appear")
			if buf.Len() == 0 {
				t.Errorf("expected log output at level %v", tt.wantSlog)
			}

			buf.Reset()
			logger.Log(context.Background(), tt.wantSlog-1, "should be suppressed")
			if buf.Len() != 0 {
				t.Errorf("level %v should suppress level %v, got %s", tt.wantSlog, tt.wantSlog-1, buf.String())
			}
		})
	}
}

func TestNewLogger_TextAddSource_JSONNoSource(t *testing.T) {
	var textBuf, jsonBuf bytes.Buffer

	slog.New(newHandler(&textBuf, config.LogConfig{Level: "info", Format: "text"})).Info("hello")
	slog.New(newHandler(&jsonBuf, config.LogConfig{Level: "info", Format: "json"})).Info("hello")

	if !strings.Contains(textBuf.String(), "source=") {
		t.Error("text format should include source")
	}

	var m map[string]any
	if err := json.Unmarshal(jsonBuf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := m["source"]; ok {
		t.Error("json format should not include source")
	}
}

func TestNewLogger_RequestIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LogConfig{Level: "info", Format: "json"})).
		With("service", "releasenote")

	ctx := ctxutil.WithRequestID(context.Background(), "req-9")
	logger.InfoContext(ctx, "release notes generated")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["request_id"] != "req-9" {
		t.Errorf("request_id = %v, want req-9", m["request_id"])
	}
	if m["service"] != "releasenote" {
		t.Errorf("service = %v, want releasenote", m["service"])
	}

	buf.Reset()
	logger.Info("no context")
	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("unexpected request_id without context: %s", buf.String())
	}
}

func TestNewLogger_AccessLogSingleRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LogConfig{Level: "info", Format: "json"}))

	h := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	req = req.WithContext(ctxutil.WithRequestID(req.Context(), "req-7"))
	h.ServeHTTP(httptest.NewRecorder(), req)

	if n := strings.Count(buf.String(), `"request_id"`); n != 1 {
		t.Fatalf("request_id appears %d times, want 1: %s", n, buf.String())
	}
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["request_id"] != "req-7" {
		t.Errorf("request_id = %v, want req-7", m["request_id"])
	}
}

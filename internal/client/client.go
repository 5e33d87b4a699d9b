// Package client is a Go client for the release note generation API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/relnotes-backend/internal/domain"
)

// DefaultBaseURL is the address of a locally running server.
const DefaultBaseURL = "http://localhost:8080"

// DefaultTimeout covers two sequential completion calls plus retries.
const DefaultTimeout = 3 * time.Minute

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("relnotes api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("relnotes api: status %d: %s", e.StatusCode, e.Message)
}

// Response is the decoded body of a successful generation call. Fields for
// platforms that were not requested, or that failed, are left empty; Errors
// names the failed ones.
type Response struct {
	IOS            domain.IOSNotes        `json:"iOSReleaseNotes"`
	Android        *string                `json:"androidReleaseNotes"`
	AndroidEntries []domain.LocalizedNote `json:"androidReleaseNoteEntries"`
	Errors         map[string]string      `json:"errors"`
}

// HasIOS reports whether the response carries iOS notes.
func (r *Response) HasIOS() bool { return r.IOS != nil }

// HasAndroid reports whether the response carries Android notes.
func (r *Response) HasAndroid() bool { return r.Android != nil }

// Client calls the generation endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client for the server at baseURL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("client", "relnotes"),
	}
}

type generateRequest struct {
	TranslationContent string `json:"translationContent"`
	BaseLanguage       string `json:"baseLanguage"`
	IOSLanguages       string `json:"iOSLanguages"`
	AndroidLanguages   string `json:"androidLanguages"`
}

// GenerateIOS calls POST /api/generate-ios.
func (c *Client) GenerateIOS(ctx context.Context, req domain.ReleaseNoteRequest) (*Response, error) {
	return c.post(ctx, "/api/generate-ios", req)
}

// GenerateAndroid calls POST /api/generate-android.
func (c *Client) GenerateAndroid(ctx context.Context, req domain.ReleaseNoteRequest) (*Response, error) {
	return c.post(ctx, "/api/generate-android", req)
}

// Generate calls POST /api/generate for both platforms in one request.
func (c *Client) Generate(ctx context.Context, req domain.ReleaseNoteRequest) (*Response, error) {
	return c.post(ctx, "/api/generate", req)
}

// GeneratePlatform calls the single-platform endpoint for p.
func (c *Client) GeneratePlatform(ctx context.Context, p domain.Platform, req domain.ReleaseNoteRequest) (*Response, error) {
	switch p {
	case domain.PlatformIOS:
		return c.GenerateIOS(ctx, req)
	case domain.PlatformAndroid:
		return c.GenerateAndroid(ctx, req)
	}
	return nil, fmt.Errorf("unknown platform %q", p)
}

func (c *Client) post(ctx context.Context, path string, req domain.ReleaseNoteRequest) (*Response, error) {
	body, err := json.Marshal(generateRequest{
		TranslationContent: req.Content,
		BaseLanguage:       req.BaseLanguage,
		IOSLanguages:       req.IOSLanguages,
		AndroidLanguages:   req.AndroidLanguages,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "relnotes response",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", resp.Header.Get("X-Request-Id")),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: body.Error}
}

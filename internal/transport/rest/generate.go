package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/relnotes-backend/internal/domain"
	"github.com/heartmarshall/relnotes-backend/internal/service/releasenote"
)

// releaseNoteService defines the minimal interface needed by GenerateHandler.
type releaseNoteService interface {
	Generate(ctx context.Context, input releasenote.GenerateInput) (*releasenote.Result, error)
}

// GenerateHandler serves the release note generation endpoints. The three
// routes share one code path and differ only in the platform selection.
type GenerateHandler struct {
	svc          releaseNoteService
	log          *slog.Logger
	maxBodyBytes int64
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(svc releaseNoteService, logger *slog.Logger, maxBodyBytes int64) *GenerateHandler {
	return &GenerateHandler{
		svc:          svc,
		log:          logger.With("handler", "generate"),
		maxBodyBytes: maxBodyBytes,
	}
}

type generateRequest struct {
	TranslationContent string `json:"translationContent"`
	BaseLanguage       string `json:"baseLanguage"`
	IOSLanguages       string `json:"iOSLanguages"`
	AndroidLanguages   string `json:"androidLanguages"`
}

type generateResponse struct {
	IOSReleaseNotes           *domain.IOSNotes        `json:"iOSReleaseNotes,omitempty"`
	AndroidReleaseNotes       *string                 `json:"androidReleaseNotes,omitempty"`
	AndroidReleaseNoteEntries *[]domain.LocalizedNote `json:"androidReleaseNoteEntries,omitempty"`
	Errors                    map[string]string       `json:"errors,omitempty"`
}

// IOS handles POST /api/generate-ios.
func (h *GenerateHandler) IOS(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, domain.SelectIOSOnly)
}

// Android handles POST /api/generate-android.
func (h *GenerateHandler) Android(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, domain.SelectAndroidOnly)
}

// Combined handles POST /api/generate.
func (h *GenerateHandler) Combined(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, domain.SelectBoth)
}

func (h *GenerateHandler) serve(w http.ResponseWriter, r *http.Request, sel domain.Selection) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Generate(r.Context(), releasenote.GenerateInput{
		Request: domain.ReleaseNoteRequest{
			Content:          req.TranslationContent,
			BaseLanguage:     req.BaseLanguage,
			IOSLanguages:     req.IOSLanguages,
			AndroidLanguages: req.AndroidLanguages,
		},
		Selection: sel,
	})
	if err != nil {
		h.handleError(w, r, sel, err)
		return
	}

	for p, cause := range result.Failures {
		h.log.ErrorContext(r.Context(), "platform generation failed",
			slog.String("platform", p.String()),
			slog.String("error", cause.Error()),
		)
	}

	writeJSON(w, http.StatusOK, toGenerateResponse(result))
}

func (h *GenerateHandler) handleError(w http.ResponseWriter, r *http.Request, sel domain.Selection, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "release note generation failed",
			slog.String("platforms", sel.String()),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, failureMessage(sel))
	}
}

// failureMessage is the fixed message returned when generation fails. The
// underlying cause is only logged.
func failureMessage(sel domain.Selection) string {
	switch sel {
	case domain.SelectIOSOnly:
		return platformFailureMessage(domain.PlatformIOS)
	case domain.SelectAndroidOnly:
		return platformFailureMessage(domain.PlatformAndroid)
	}
	return "Error generating release notes"
}

func platformFailureMessage(p domain.Platform) string {
	return "Error generating " + p.DisplayName() + " release notes"
}

func toGenerateResponse(result *releasenote.Result) generateResponse {
	var resp generateResponse

	for _, p := range result.Selection.Platforms() {
		if result.Failed(p) {
			if resp.Errors == nil {
				resp.Errors = make(map[string]string)
			}
			resp.Errors[p.String()] = platformFailureMessage(p)
			continue
		}

		switch p {
		case domain.PlatformIOS:
			notes := result.IOS
			if notes == nil {
				notes = domain.IOSNotes{}
			}
			resp.IOSReleaseNotes = &notes
		case domain.PlatformAndroid:
			var android domain.AndroidNotes
			if result.Android != nil {
				android = *result.Android
			}
			flat := android.Flatten()
			entries := android.Entries
			if entries == nil {
				entries = []domain.LocalizedNote{}
			}
			resp.AndroidReleaseNotes = &flat
			resp.AndroidReleaseNoteEntries = &entries
		}
	}

	return resp
}

package releasenote

import (
	"strings"

	"github.com/heartmarshall/relnotes-backend/internal/domain"
)

// GenerateInput holds the parameters for one generation.
type GenerateInput struct {
	Request   domain.ReleaseNoteRequest
	Selection domain.Selection
}

// Validate checks all fields and collects all errors. Language lists are
// only required for the selected platforms.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Selection.IsValid() {
		errs = append(errs, domain.FieldError{Field: "platforms", Message: "invalid selection"})
	}
	if strings.TrimSpace(i.Request.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "translationContent", Message: "required"})
	}
	if strings.TrimSpace(i.Request.BaseLanguage) == "" {
		errs = append(errs, domain.FieldError{Field: "baseLanguage", Message: "required"})
	}
	if i.Selection.Includes(domain.PlatformIOS) && len(domain.ParseLanguageList(i.Request.IOSLanguages)) == 0 {
		errs = append(errs, domain.FieldError{Field: "iOSLanguages", Message: "at least one language required"})
	}
	if i.Selection.Includes(domain.PlatformAndroid) && len(domain.ParseLanguageList(i.Request.AndroidLanguages)) == 0 {
		errs = append(errs, domain.FieldError{Field: "androidLanguages", Message: "at least one language required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

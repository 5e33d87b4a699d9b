package project

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/relnotes-backend/internal/domain"
)

const maxNameLen = 100

var languageCode = regexp.MustCompile(`^[\w-]+$`)

// SaveProjectInput holds the parameters for creating or updating a project.
// A zero ID creates a new project.
type SaveProjectInput struct {
	ID               int64
	Name             string
	BaseLanguage     string
	IOSLanguages     string
	AndroidLanguages string
}

// Validate checks all fields and collects all errors.
func (i SaveProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.ID < 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must not be negative"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	base := strings.TrimSpace(i.BaseLanguage)
	switch {
	case base == "":
		errs = append(errs, domain.FieldError{Field: "baseLanguage", Message: "required"})
	case !languageCode.MatchString(base):
		errs = append(errs, domain.FieldError{Field: "baseLanguage", Message: "must be a single language code"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i SaveProjectInput) project() domain.Project {
	return domain.Project{
		ID:               i.ID,
		Name:             strings.TrimSpace(i.Name),
		BaseLanguage:     strings.TrimSpace(i.BaseLanguage),
		IOSLanguages:     strings.TrimSpace(i.IOSLanguages),
		AndroidLanguages: strings.TrimSpace(i.AndroidLanguages),
	}
}

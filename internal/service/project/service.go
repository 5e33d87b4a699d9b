// Package project manages saved project presets for the CLI.
package project

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/relnotes-backend/internal/domain"
)

//go:generate moq -out project_repo_mock_test.go -pkg project . projectRepo

type projectRepo interface {
	Load(ctx context.Context) ([]domain.Project, error)
	SaveOne(ctx context.Context, p domain.Project) (domain.Project, error)
	DeleteOne(ctx context.Context, id int64) error
}

// Service provides project management operations.
type Service struct {
	projects projectRepo
	log      *slog.Logger
}

// NewService creates a new project Service.
func NewService(log *slog.Logger, projects projectRepo) *Service {
	return &Service{
		projects: projects,
		log:      log.With("service", "project"),
	}
}

package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/heartmarshall/relnotes-backend/internal/domain"
)

// List returns all saved projects, oldest first.
func (s *Service) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projects.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return projects, nil
}

// Get returns the project with the given ID.
func (s *Service) Get(ctx context.Context, id int64) (domain.Project, error) {
	projects, err := s.List(ctx)
	if err != nil {
		return domain.Project{}, err
	}

	p, ok := lo.Find(projects, func(p domain.Project) bool { return p.ID == id })
	if !ok {
		return domain.Project{}, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

// Save creates a project or replaces an existing one with the same ID.
func (s *Service) Save(ctx context.Context, input SaveProjectInput) (domain.Project, error) {
	if err := input.Validate(); err != nil {
		return domain.Project{}, err
	}

	saved, err := s.projects.SaveOne(ctx, input.project())
	if err != nil {
		return domain.Project{}, fmt.Errorf("save project: %w", err)
	}

	s.log.InfoContext(ctx, "project saved",
		slog.Int64("project_id", saved.ID),
		slog.String("name", saved.Name),
		slog.Bool("created", input.ID == 0),
	)

	return saved, nil
}

// Delete removes a project. Returns domain.ErrNotFound for an unknown ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.projects.DeleteOne(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.log.InfoContext(ctx, "project deleted", slog.Int64("project_id", id))
	return nil
}

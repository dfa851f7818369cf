package templates

import (
	"context"
	"time"
)

// RepositoryPort defines data access methods for templates.
type RepositoryPort interface {
	List(ctx context.Context) ([]Template, error)
	Get(ctx context.Context, id int64) (*Template, error)
	Insert(ctx context.Context, t Template) error
	Update(ctx context.Context, id int64, name, content string) error
}

// Service handles template business logic.
type Service struct {
	repo  RepositoryPort
	clock func() time.Time
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{repo: repo, clock: clock}
}

// List returns all templates.
func (s *Service) List(ctx context.Context) ([]Template, error) {
	return s.repo.List(ctx)
}

// Create persists a new template.
func (s *Service) Create(ctx context.Context, t Template) error {
	return s.repo.Insert(ctx, t)
}

// Update overwrites a template in place by id.
func (s *Service) Update(ctx context.Context, id int64, name, content string) error {
	return s.repo.Update(ctx, id, name, content)
}

// Preview renders a template with the synthetic example values.
func (s *Service) Preview(ctx context.Context, id int64, username string) (string, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return Substitute(t.Content, PreviewValues(s.clock(), username)), nil
}

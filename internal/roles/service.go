package roles

import "context"

// RepositoryPort defines data access methods for roles.
type RepositoryPort interface {
	List(ctx context.Context) ([]Role, error)
	Insert(ctx context.Context, name string, permissions []string) error
}

// Service handles role business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns all roles.
func (s *Service) List(ctx context.Context) ([]Role, error) {
	return s.repo.List(ctx)
}

// Create persists a new role.
func (s *Service) Create(ctx context.Context, name string, permissions []string) error {
	return s.repo.Insert(ctx, name, permissions)
}

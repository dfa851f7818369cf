package audit

import "context"

// RepositoryPort defines data access methods for log listings.
type RepositoryPort interface {
	ListRecent(ctx context.Context, limit int) ([]Entry, error)
}

// Service coordinates audit log reads.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

const listLimit = 100

// Recent returns the latest 100 log entries, newest first.
func (s *Service) Recent(ctx context.Context) ([]Entry, error) {
	return s.repo.ListRecent(ctx, listLimit)
}

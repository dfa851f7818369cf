package protocols

import (
	"context"
	"errors"
	"time"

	"github.com/protocolo-digital/protocolo/internal/shared"
)

// RepositoryPort defines data access methods for protocols.
type RepositoryPort interface {
	List(ctx context.Context) ([]Protocol, error)
	Insert(ctx context.Context, p Protocol) error
	TemplateName(ctx context.Context, templateID int64) (string, error)
}

// CreateInput carries the fields accepted by protocol creation.
type CreateInput struct {
	Title       string
	Description string
	Data        *string
	TemplateID  *int64
	CreatedBy   int64
}

// Service handles protocol business logic.
type Service struct {
	repo  RepositoryPort
	clock Clock
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, clock Clock) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{repo: repo, clock: clock}
}

// List returns all protocols, newest first.
func (s *Service) List(ctx context.Context) ([]Protocol, error) {
	return s.repo.List(ctx)
}

// Create inserts a new protocol. The id is derived from the wall clock at
// the moment of the call; doc_type is a denormalized copy of the chosen
// template's name, falling back to "Geral" when the lookup misses. A
// same-millisecond duplicate is not retried and surfaces the storage error.
func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	docType := DefaultDocType
	if in.TemplateID != nil {
		name, err := s.repo.TemplateName(ctx, *in.TemplateID)
		if err == nil {
			docType = name
		} else if !errors.Is(err, shared.ErrNotFound) {
			return "", err
		}
	}

	id := GenerateID(s.clock())
	err := s.repo.Insert(ctx, Protocol{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		DocType:     docType,
		Data:        in.Data,
		TemplateID:  in.TemplateID,
		CreatedBy:   in.CreatedBy,
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

package protocols_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protocolo-digital/protocolo/internal/protocols"
	"github.com/protocolo-digital/protocolo/internal/shared"
)

type stubRepo struct {
	templates map[int64]string
	inserted  []protocols.Protocol
	insertErr error
}

func (s *stubRepo) List(ctx context.Context) ([]protocols.Protocol, error) {
	return s.inserted, nil
}

func (s *stubRepo) Insert(ctx context.Context, p protocols.Protocol) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, p)
	return nil
}

func (s *stubRepo) TemplateName(ctx context.Context, templateID int64) (string, error) {
	name, ok := s.templates[templateID]
	if !ok {
		return "", shared.ErrNotFound
	}
	return name, nil
}

func fixedClock(ts time.Time) protocols.Clock {
	return func() time.Time { return ts }
}

func TestCreateResolvesDocTypeFromTemplate(t *testing.T) {
	repo := &stubRepo{templates: map[int64]string{3: "Ofício"}}
	svc := protocols.NewService(repo, fixedClock(time.Date(2025, 2, 1, 8, 30, 0, 0, time.UTC)))

	templateID := int64(3)
	id, err := svc.Create(context.Background(), protocols.CreateInput{
		Title:       "T",
		Description: "D",
		TemplateID:  &templateID,
		CreatedBy:   1,
	})
	require.NoError(t, err)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "Ofício", repo.inserted[0].DocType)
	assert.Equal(t, id, repo.inserted[0].ID)
	assert.Len(t, id, 17)
}

func TestCreateDefaultsDocTypeWithoutTemplate(t *testing.T) {
	repo := &stubRepo{}
	svc := protocols.NewService(repo, fixedClock(time.Date(2025, 2, 1, 8, 30, 0, 0, time.UTC)))

	_, err := svc.Create(context.Background(), protocols.CreateInput{Title: "T", Description: "D", CreatedBy: 1})
	require.NoError(t, err)
	assert.Equal(t, "Geral", repo.inserted[0].DocType)
}

func TestCreateDefaultsDocTypeWhenLookupMisses(t *testing.T) {
	repo := &stubRepo{templates: map[int64]string{}}
	svc := protocols.NewService(repo, fixedClock(time.Date(2025, 2, 1, 8, 30, 0, 0, time.UTC)))

	missing := int64(99)
	_, err := svc.Create(context.Background(), protocols.CreateInput{
		Title: "T", Description: "D", TemplateID: &missing, CreatedBy: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Geral", repo.inserted[0].DocType)
}

func TestCreatePropagatesStorageErrorWithoutRetry(t *testing.T) {
	repo := &stubRepo{insertErr: assert.AnError}
	svc := protocols.NewService(repo, fixedClock(time.Date(2025, 2, 1, 8, 30, 0, 0, time.UTC)))

	_, err := svc.Create(context.Background(), protocols.CreateInput{Title: "T", Description: "D", CreatedBy: 1})
	require.Error(t, err)
	assert.Empty(t, repo.inserted)
}

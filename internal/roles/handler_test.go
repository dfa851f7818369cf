package roles_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protocolo-digital/protocolo/internal/audit"
	"github.com/protocolo-digital/protocolo/internal/rbac"
	"github.com/protocolo-digital/protocolo/internal/roles"
	"github.com/protocolo-digital/protocolo/internal/shared"
)

type stubRepo struct {
	stored map[string][]string
}

func (s *stubRepo) List(ctx context.Context) ([]roles.Role, error) {
	var all []roles.Role
	id := int64(1)
	for name, perms := range s.stored {
		all = append(all, roles.Role{ID: id, Name: name, Permissions: perms})
		id++
	}
	return all, nil
}

func (s *stubRepo) Insert(ctx context.Context, name string, permissions []string) error {
	if s.stored == nil {
		s.stored = map[string][]string{}
	}
	if _, exists := s.stored[name]; exists {
		return shared.ErrDuplicate
	}
	s.stored[name] = permissions
	return nil
}

func newRolesRouter(t *testing.T, repo *stubRepo, principal *shared.Principal) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := roles.NewHandler(logger, roles.NewService(repo), audit.NewRecorder(nil, nil), rbac.Middleware{})

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(shared.ContextWithPrincipal(req.Context(), principal)))
		})
	})
	r.Route("/api/roles", handler.MountRoutes)
	return r
}

func admin() *shared.Principal {
	return &shared.Principal{ID: 1, Username: "admin", Role: "Admin", Permissions: []string{"all"}}
}

func TestCreateRole(t *testing.T) {
	repo := &stubRepo{}
	router := newRolesRouter(t, repo, admin())

	body := `{"name":"Consulta","permissions":["view_protocol"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/roles/", strings.NewReader(body))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusCreated, res.Code)
	assert.Equal(t, []string{"view_protocol"}, repo.stored["Consulta"])
}

func TestCreateRoleDuplicate(t *testing.T) {
	repo := &stubRepo{stored: map[string][]string{"Admin": {"all"}}}
	router := newRolesRouter(t, repo, admin())

	body := `{"name":"Admin","permissions":["all"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/roles/", strings.NewReader(body))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), "Perfil já existe")
}

func TestCreateRoleWithoutPermissionsList(t *testing.T) {
	repo := &stubRepo{}
	router := newRolesRouter(t, repo, admin())

	req := httptest.NewRequest(http.MethodPost, "/api/roles/", strings.NewReader(`{"name":"Vazio"}`))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	// Omitted permissions default to an empty set, matching the API contract.
	require.Equal(t, http.StatusCreated, res.Code)
	_, ok := repo.stored["Vazio"]
	assert.True(t, ok)
}

func TestListRoles(t *testing.T) {
	repo := &stubRepo{stored: map[string][]string{"Admin": {"all"}}}
	router := newRolesRouter(t, repo, admin())

	req := httptest.NewRequest(http.MethodGet, "/api/roles/", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	var listed []roles.Role
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, []string{"all"}, listed[0].Permissions)
}

package protocols_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protocolo-digital/protocolo/internal/audit"
	"github.com/protocolo-digital/protocolo/internal/protocols"
	"github.com/protocolo-digital/protocolo/internal/rbac"
	"github.com/protocolo-digital/protocolo/internal/shared"
)

func newProtocolsRouter(t *testing.T, repo *stubRepo, principal *shared.Principal) http.Handler {
	t.Helper()
	svc := protocols.NewService(repo, fixedClock(time.Date(2025, 4, 10, 14, 0, 0, 123*int(time.Millisecond), time.UTC)))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := protocols.NewHandler(logger, svc, audit.NewRecorder(nil, nil), rbac.Middleware{})

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(shared.ContextWithPrincipal(req.Context(), principal)))
		})
	})
	r.Route("/api/protocols", handler.MountRoutes)
	return r
}

func TestCreateProtocolReturnsID(t *testing.T) {
	repo := &stubRepo{templates: map[int64]string{1: "Geral"}}
	admin := &shared.Principal{ID: 1, Username: "admin", Role: "Admin", Permissions: []string{"all"}}
	router := newProtocolsRouter(t, repo, admin)

	body := `{"title":"T","description":"D","template_id":1,"created_by":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/protocols/", strings.NewReader(body))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusCreated, res.Code)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	assert.Equal(t, "20250410140000123", payload["id"])
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "Geral", repo.inserted[0].DocType)
}

func TestCreateProtocolMissingFields(t *testing.T) {
	admin := &shared.Principal{ID: 1, Username: "admin", Role: "Admin", Permissions: []string{"all"}}
	router := newProtocolsRouter(t, &stubRepo{}, admin)

	req := httptest.NewRequest(http.MethodPost, "/api/protocols/", strings.NewReader(`{"title":"T"}`))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestCreateProtocolStorageFailure(t *testing.T) {
	admin := &shared.Principal{ID: 1, Username: "admin", Role: "Admin", Permissions: []string{"all"}}
	router := newProtocolsRouter(t, &stubRepo{insertErr: assert.AnError}, admin)

	body := `{"title":"T","description":"D","created_by":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/protocols/", strings.NewReader(body))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Contains(t, res.Body.String(), "Erro ao criar protocolo no banco de dados")
}

func TestCreateProtocolRequiresCapability(t *testing.T) {
	operador := &shared.Principal{ID: 2, Username: "op", Role: "Consulta", Permissions: []string{"view_protocol"}}
	router := newProtocolsRouter(t, &stubRepo{}, operador)

	body := `{"title":"T","description":"D","created_by":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/protocols/", strings.NewReader(body))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusForbidden, res.Code)
}

func TestListProtocols(t *testing.T) {
	repo := &stubRepo{inserted: []protocols.Protocol{{ID: "20250101120000000", Title: "T", DocType: "Geral", Status: "Aberto"}}}
	admin := &shared.Principal{ID: 1, Username: "admin", Role: "Admin", Permissions: []string{"all"}}
	router := newProtocolsRouter(t, repo, admin)

	req := httptest.NewRequest(http.MethodGet, "/api/protocols/", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	var listed []protocols.Protocol
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "20250101120000000", listed[0].ID)
}

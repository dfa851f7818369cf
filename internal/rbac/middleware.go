package rbac

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/protocolo-digital/protocolo/internal/platform/httpx"
	"github.com/protocolo-digital/protocolo/internal/shared"
)

// PrincipalResolver loads a principal by user id.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, userID int64) (*shared.Principal, error)
}

// Middleware wires authorization helpers for HTTP handlers.
type Middleware struct {
	Sessions *shared.SessionManager
	Resolver PrincipalResolver
	Logger   *slog.Logger
}

// RequireSession parses the session cookie, re-reads the user row and stores
// the principal in the request context. A missing, unparsable or stale
// cookie yields 401.
func (m Middleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := m.Sessions.Read(r)
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, "Não autenticado")
			return
		}
		principal, err := m.Resolver.ResolvePrincipal(r.Context(), data.ID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				httpx.Error(w, http.StatusUnauthorized, "Usuário não encontrado")
				return
			}
			if m.Logger != nil {
				m.Logger.Error("resolve principal", slog.Int64("user_id", data.ID), slog.Any("error", err))
			}
			httpx.Error(w, http.StatusUnauthorized, "Sessão inválida")
			return
		}
		ctx := shared.ContextWithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAny ensures the current principal holds at least one of the listed
// capabilities. The "all" tag always passes.
func (m Middleware) RequireAny(perms ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := shared.PrincipalFromContext(r.Context())
			if principal == nil {
				httpx.Error(w, http.StatusUnauthorized, "Não autenticado")
				return
			}
			for _, p := range perms {
				if principal.HasPermission(p) {
					next.ServeHTTP(w, r)
					return
				}
			}
			httpx.Error(w, http.StatusForbidden, "Permissão negada")
		})
	}
}

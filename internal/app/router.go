package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/protocolo-digital/protocolo/internal/audit"
	"github.com/protocolo-digital/protocolo/internal/auth"
	"github.com/protocolo-digital/protocolo/internal/protocols"
	"github.com/protocolo-digital/protocolo/internal/rbac"
	"github.com/protocolo-digital/protocolo/internal/roles"
	"github.com/protocolo-digital/protocolo/internal/templates"
	"github.com/protocolo-digital/protocolo/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	RBACMiddleware   rbac.Middleware
	AuthHandler      *auth.Handler
	ProtocolsHandler *protocols.Handler
	TemplatesHandler *templates.Handler
	UsersHandler     *users.Handler
	RolesHandler     *roles.Handler
	AuditHandler     *audit.Handler
}

// NewRouter constructs the chi.Router for the API.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Login and logout manage the session cookie themselves.
		params.AuthHandler.MountRoutes(r)

		// Everything else resolves the cookie to a real user row first.
		r.Group(func(r chi.Router) {
			r.Use(params.RBACMiddleware.RequireSession)
			params.AuthHandler.MountSessionRoutes(r)
			r.Route("/protocols", params.ProtocolsHandler.MountRoutes)
			r.Route("/templates", params.TemplatesHandler.MountRoutes)
			r.Route("/users", params.UsersHandler.MountRoutes)
			r.Route("/roles", params.RolesHandler.MountRoutes)
			r.Route("/logs", params.AuditHandler.MountRoutes)
		})
	})

	return r
}

package auth

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/protocolo-digital/protocolo/internal/audit"
	"github.com/protocolo-digital/protocolo/internal/platform/httpx"
	"github.com/protocolo-digital/protocolo/internal/shared"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	sessions  *shared.SessionManager
	recorder  *audit.Recorder
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, sessions *shared.SessionManager, recorder *audit.Recorder) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		sessions:  sessions,
		recorder:  recorder,
		validator: validator.New(),
	}
}

// MountRoutes registers the unauthenticated auth routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)
}

// MountSessionRoutes registers routes that require a resolved principal.
func (h *Handler) MountSessionRoutes(r chi.Router) {
	r.Get("/me", h.handleMe)
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Requisição inválida")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Usuário e senha são obrigatórios")
		return
	}

	account, err := h.service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Credenciais inválidas")
		return
	}

	if err := h.sessions.Issue(w, shared.SessionData{ID: account.ID, Username: account.Username}); err != nil {
		h.logger.Error("issue session", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Erro ao iniciar sessão")
		return
	}

	h.recorder.Record(r.Context(), account.ID, audit.ActionLogin,
		fmt.Sprintf("Usuário %s entrou no sistema", account.Username))

	httpx.JSON(w, http.StatusOK, shared.Principal{
		ID:          account.ID,
		Username:    account.Username,
		Role:        account.Role,
		Permissions: account.Permissions,
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	// The logout log row depends on a parsable cookie; a corrupt one is only
	// warned to the operator log and the cookie is cleared regardless.
	if data, err := h.sessions.Read(r); err == nil {
		h.recorder.Record(r.Context(), data.ID, audit.ActionLogout,
			fmt.Sprintf("Usuário %s saiu do sistema", data.Username))
	} else if _, cookieErr := r.Cookie(h.sessions.CookieName()); cookieErr == nil {
		h.logger.Warn("logout with unparsable session cookie", slog.Any("error", err))
	}

	h.sessions.Clear(w)
	httpx.Success(w, http.StatusOK)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	principal := shared.PrincipalFromContext(r.Context())
	if principal == nil {
		httpx.Error(w, http.StatusUnauthorized, "Não autenticado")
		return
	}
	httpx.JSON(w, http.StatusOK, principal)
}

package roles

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/protocolo-digital/protocolo/internal/audit"
	"github.com/protocolo-digital/protocolo/internal/platform/httpx"
	"github.com/protocolo-digital/protocolo/internal/rbac"
	"github.com/protocolo-digital/protocolo/internal/shared"
)

// Handler serves the role management endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	recorder  *audit.Recorder
	rbac      rbac.Middleware
	validator *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, recorder *audit.Recorder, rbac rbac.Middleware) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		recorder:  recorder,
		rbac:      rbac,
		validator: validator.New(),
	}
}

// MountRoutes registers role routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listRoles)
	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequireAny(shared.PermManageUsers))
		r.Post("/", h.createRole)
	})
}

func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list roles failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Erro ao listar perfis")
		return
	}
	if roles == nil {
		roles = []Role{}
	}
	httpx.JSON(w, http.StatusOK, roles)
}

type createRoleRequest struct {
	Name        string   `json:"name" validate:"required"`
	Permissions []string `json:"permissions"`
}

func (h *Handler) createRole(w http.ResponseWriter, r *http.Request) {
	var req createRoleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Requisição inválida")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Nome do perfil é obrigatório")
		return
	}

	if err := h.service.Create(r.Context(), req.Name, req.Permissions); err != nil {
		if errors.Is(err, shared.ErrDuplicate) {
			httpx.Error(w, http.StatusBadRequest, "Perfil já existe")
			return
		}
		h.logger.Error("create role failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Erro ao criar perfil")
		return
	}

	actorID := int64(1)
	if principal := shared.PrincipalFromContext(r.Context()); principal != nil {
		actorID = principal.ID
	}
	h.recorder.Record(r.Context(), actorID, audit.ActionCreateRole,
		fmt.Sprintf("Perfil criado: %s", req.Name))

	httpx.Success(w, http.StatusCreated)
}

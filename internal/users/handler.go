package users

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

// Handler serves the user management endpoints.
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

// MountRoutes registers user routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listUsers)
	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequireAny(shared.PermManageUsers))
		r.Post("/", h.createUser)
	})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list users failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Erro ao listar usuários")
		return
	}
	if users == nil {
		users = []User{}
	}
	httpx.JSON(w, http.StatusOK, users)
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	RoleID   int64  `json:"role_id" validate:"required"`
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Requisição inválida")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Usuário, senha e perfil são obrigatórios")
		return
	}

	if err := h.service.Create(r.Context(), req.Username, req.Password, req.RoleID); err != nil {
		if errors.Is(err, shared.ErrDuplicate) {
			httpx.Error(w, http.StatusBadRequest, "Usuário já existe")
			return
		}
		h.logger.Error("create user failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Erro ao criar usuário")
		return
	}

	actorID := int64(1)
	if principal := shared.PrincipalFromContext(r.Context()); principal != nil {
		actorID = principal.ID
	}
	h.recorder.Record(r.Context(), actorID, audit.ActionCreateUser,
		fmt.Sprintf("Usuário criado: %s", req.Username))

	httpx.Success(w, http.StatusCreated)
}

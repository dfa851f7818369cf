package templates

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/protocolo-digital/protocolo/internal/audit"
	"github.com/protocolo-digital/protocolo/internal/platform/httpx"
	"github.com/protocolo-digital/protocolo/internal/rbac"
	"github.com/protocolo-digital/protocolo/internal/shared"
)

// Handler serves the template endpoints.
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

// MountRoutes registers template routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listTemplates)
	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequireAny(shared.PermManageTemplates))
		r.Post("/", h.createTemplate)
		r.Put("/{id}", h.updateTemplate)
		r.Post("/{id}/preview", h.previewTemplate)
	})
}

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list templates failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Erro ao listar modelos")
		return
	}
	if templates == nil {
		templates = []Template{}
	}
	httpx.JSON(w, http.StatusOK, templates)
}

type createTemplateRequest struct {
	Name      string `json:"name" validate:"required"`
	Content   string `json:"content" validate:"required"`
	CreatedBy int64  `json:"created_by" validate:"required"`
}

func (h *Handler) createTemplate(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Requisição inválida")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Nome, conteúdo e autor são obrigatórios")
		return
	}

	if err := h.service.Create(r.Context(), Template{Name: req.Name, Content: req.Content, CreatedBy: req.CreatedBy}); err != nil {
		h.logger.Error("create template failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Erro ao criar modelo")
		return
	}

	h.recorder.Record(r.Context(), req.CreatedBy, audit.ActionCreateTemplate,
		fmt.Sprintf("Modelo criado: %s", req.Name))

	httpx.Success(w, http.StatusCreated)
}

type updateTemplateRequest struct {
	Name    string `json:"name" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// updateTemplate overwrites a template in place. There is no existence
// check: an update on an absent id reports success. Updates are not logged.
func (h *Handler) updateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Identificador inválido")
		return
	}
	var req updateTemplateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Requisição inválida")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Nome e conteúdo são obrigatórios")
		return
	}

	if err := h.service.Update(r.Context(), id, req.Name, req.Content); err != nil {
		h.logger.Error("update template failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Erro ao atualizar modelo")
		return
	}
	httpx.Success(w, http.StatusOK)
}

func (h *Handler) previewTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Identificador inválido")
		return
	}
	username := ""
	if principal := shared.PrincipalFromContext(r.Context()); principal != nil {
		username = principal.Username
	}
	content, err := h.service.Preview(r.Context(), id, username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Modelo não encontrado")
			return
		}
		h.logger.Error("preview template failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Erro ao gerar pré-visualização")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"content": content})
}

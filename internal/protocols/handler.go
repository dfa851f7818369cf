package protocols

import (
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

// Handler serves the protocol endpoints.
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

// MountRoutes registers protocol routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listProtocols)
	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequireAny(shared.PermCreateProtocol))
		r.Post("/", h.createProtocol)
	})
}

func (h *Handler) listProtocols(w http.ResponseWriter, r *http.Request) {
	protocols, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list protocols failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Erro ao listar protocolos")
		return
	}
	if protocols == nil {
		protocols = []Protocol{}
	}
	httpx.JSON(w, http.StatusOK, protocols)
}

type createProtocolRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Data        *string `json:"data"`
	TemplateID  *int64  `json:"template_id"`
	CreatedBy   int64   `json:"created_by" validate:"required"`
}

func (h *Handler) createProtocol(w http.ResponseWriter, r *http.Request) {
	var req createProtocolRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Requisição inválida")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Título, descrição e autor são obrigatórios")
		return
	}

	id, err := h.service.Create(r.Context(), CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Data:        req.Data,
		TemplateID:  req.TemplateID,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		h.logger.Error("create protocol failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Erro ao criar protocolo no banco de dados")
		return
	}

	h.recorder.Record(r.Context(), req.CreatedBy, audit.ActionCreateProtocol,
		fmt.Sprintf("Protocolo %s criado: %s", id, req.Title))

	httpx.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

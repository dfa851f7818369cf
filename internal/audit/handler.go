package audit

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/protocolo-digital/protocolo/internal/platform/httpx"
)

// Handler serves the audit log endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers audit routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listLogs)
}

func (h *Handler) listLogs(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Recent(r.Context())
	if err != nil {
		h.logger.Error("list logs failed", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Erro ao listar registros")
		return
	}
	if entries == nil {
		entries = []Entry{}
	}
	httpx.JSON(w, http.StatusOK, entries)
}

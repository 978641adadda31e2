package list_offerings

import (
	"net/http"

	"github.com/m04kA/SMC-ServiceBooking/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/offerings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /offerings - Failed to list offerings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, offerings)
}

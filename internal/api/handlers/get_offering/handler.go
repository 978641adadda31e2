package get_offering

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ServiceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ServiceBooking/internal/service/catalog"
)

const msgNotFound = "offering not found"

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

// Handle GET /api/v1/offerings/{offeringId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	offeringID := mux.Vars(r)["offeringId"]

	offering, err := h.service.GetByID(r.Context(), offeringID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrOfferingNotFound):
			h.logger.Warn("GET /offerings/{id} - Offering not found: offering_id=%s", offeringID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /offerings/{id} - Failed to get offering: offering_id=%s, error=%v", offeringID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, offering)
}

package add_sub_offering

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ServiceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	"github.com/m04kA/SMC-ServiceBooking/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "offering not found"
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

// Handle POST /api/v1/admin/offerings/{offeringId}/sub-offerings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	offeringID := mux.Vars(r)["offeringId"]

	var req models.SubOfferingInput
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/offerings/{id}/sub-offerings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sub, err := h.service.AddSubOffering(r.Context(), offeringID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("POST /admin/offerings/{id}/sub-offerings - Offering not found: offering_id=%s", offeringID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /admin/offerings/{id}/sub-offerings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/offerings/{id}/sub-offerings - Failed to add sub-offering: offering_id=%s, error=%v",
				offeringID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/offerings/{id}/sub-offerings - Sub-offering added: offering_id=%s, sub_id=%s", offeringID, sub.ID)
	handlers.RespondJSON(w, http.StatusCreated, sub)
}

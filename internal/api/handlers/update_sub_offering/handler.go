package update_sub_offering

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
	msgNotFound           = "offering or sub-offering not found"
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

// Handle PUT /api/v1/admin/offerings/{offeringId}/sub-offerings/{subId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	offeringID, subID := vars["offeringId"], vars["subId"]

	var req models.UpdateSubOfferingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/offerings/{id}/sub-offerings/{subId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sub, err := h.service.UpdateSubOffering(r.Context(), offeringID, subID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("PUT /admin/offerings/{id}/sub-offerings/{subId} - Not found: offering_id=%s, sub_id=%s",
				offeringID, subID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PUT /admin/offerings/{id}/sub-offerings/{subId} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /admin/offerings/{id}/sub-offerings/{subId} - Failed to update: offering_id=%s, sub_id=%s, error=%v",
				offeringID, subID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/offerings/{id}/sub-offerings/{subId} - Sub-offering updated: offering_id=%s, sub_id=%s",
		offeringID, subID)
	handlers.RespondJSON(w, http.StatusOK, sub)
}

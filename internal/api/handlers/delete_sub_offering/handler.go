package delete_sub_offering

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ServiceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ServiceBooking/internal/service/catalog"
)

const msgNotFound = "offering not found"

// DeleteResponse HTTP response model
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

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

// Handle DELETE /api/v1/admin/offerings/{offeringId}/sub-offerings/{subId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	offeringID, subID := vars["offeringId"], vars["subId"]

	deleted, err := h.service.DeleteSubOffering(r.Context(), offeringID, subID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrOfferingNotFound):
			h.logger.Warn("DELETE /admin/offerings/{id}/sub-offerings/{subId} - Offering not found: offering_id=%s", offeringID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/offerings/{id}/sub-offerings/{subId} - Failed to delete: offering_id=%s, sub_id=%s, error=%v",
				offeringID, subID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/offerings/{id}/sub-offerings/{subId} - offering_id=%s, sub_id=%s, deleted=%t",
		offeringID, subID, deleted)
	handlers.RespondJSON(w, http.StatusOK, &DeleteResponse{Deleted: deleted})
}

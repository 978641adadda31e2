package delete_offering

import (
	"net/http"

	"github.com/gorilla/mux"

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

// Handle DELETE /api/v1/admin/offerings/{offeringId}
// Удаление отсутствующей категории - не ошибка: {"deleted": false}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	offeringID := mux.Vars(r)["offeringId"]

	deleted, err := h.service.Delete(r.Context(), offeringID)
	if err != nil {
		h.logger.Error("DELETE /admin/offerings/{id} - Failed to delete offering: offering_id=%s, error=%v", offeringID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/offerings/{id} - offering_id=%s, deleted=%t", offeringID, deleted)
	handlers.RespondJSON(w, http.StatusOK, &DeleteResponse{Deleted: deleted})
}

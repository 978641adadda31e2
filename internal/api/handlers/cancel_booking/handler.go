package cancel_booking

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ServiceBooking/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	cancelled, err := h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		h.logger.Error("PATCH /admin/bookings/{id}/cancel - Failed to cancel booking: booking_id=%s, error=%v",
			bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	if cancelled {
		h.logger.Info("PATCH /admin/bookings/{id}/cancel - Booking cancelled successfully: booking_id=%s", bookingID)
	} else {
		h.logger.Warn("PATCH /admin/bookings/{id}/cancel - Nothing to cancel: booking_id=%s", bookingID)
	}
	handlers.RespondJSON(w, http.StatusOK, &CancelBookingResponse{ID: bookingID, Cancelled: cancelled})
}

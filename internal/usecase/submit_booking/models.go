package submit_booking

import (
	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	"github.com/m04kA/SMC-ServiceBooking/internal/usecase/create_booking"
)

// NotificationWarning текст предупреждения, когда подтверждение не доставлено
const NotificationWarning = "Booking confirmed, but the confirmation email could not be sent. Please save your booking ID."

// Request модель запроса на оформление бронирования
type Request = create_booking.Request

// Customer контактные данные клиента
type Customer = create_booking.Customer

// Response модель ответа на оформление бронирования
type Response struct {
	Booking          *domain.Booking
	ServiceNames     []string
	NotificationSent bool
	Warning          string // пусто, если подтверждение доставлено
}

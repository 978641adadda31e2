package submit_booking

import (
	"github.com/m04kA/SMC-ServiceBooking/internal/service/bookings/models"
	submitBooking "github.com/m04kA/SMC-ServiceBooking/internal/usecase/submit_booking"
)

// CustomerRequest контактные данные клиента
type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	SubOfferingIDs []string        `json:"subOfferingIds"`
	Date           string          `json:"date"` // "2025-03-10"
	Time           string          `json:"time"` // "10:00 AM"
	Customer       CustomerRequest `json:"customer"`
	Message        *string         `json:"message,omitempty"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	Booking          *models.BookingResponse `json:"booking"`
	NotificationSent bool                    `json:"notificationSent"`
	Warning          string                  `json:"warning,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest() *submitBooking.Request {
	return &submitBooking.Request{
		SubOfferingIDs: append([]string(nil), r.SubOfferingIDs...),
		Date:           r.Date,
		Time:           r.Time,
		Customer: submitBooking.Customer{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
		Message: r.Message,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		Booking:          models.FromDomainBooking(resp.Booking),
		NotificationSent: resp.NotificationSent,
		Warning:          resp.Warning,
	}
}

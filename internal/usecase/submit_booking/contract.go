package submit_booking

import (
	"context"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	"github.com/m04kA/SMC-ServiceBooking/internal/usecase/create_booking"
)

// BookingCreator создание бронирования (захват слота и сохранение)
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// Notifier отправка подтверждения клиенту
type Notifier interface {
	SendConfirmation(ctx context.Context, booking *domain.Booking, serviceNames []string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

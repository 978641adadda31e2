package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string, at time.Time) error
	Stats(ctx context.Context) (*domain.BookingStats, error)
}

// SlotLedger интерфейс реестра слотов
type SlotLedger interface {
	Release(ctx context.Context, bookingID string) (bool, error)
}

// SchedulePolicy разбор дат в часовом поясе бизнеса
type SchedulePolicy interface {
	ParseDate(value string) (time.Time, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счётчики отмен
type MetricsRecorder interface {
	ObserveCancellation()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

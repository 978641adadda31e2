package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	"github.com/m04kA/SMC-ServiceBooking/internal/service/catalog/models"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// SlotLedger интерфейс реестра слотов
type SlotLedger interface {
	Reserve(ctx context.Context, date time.Time, label, bookingID string) error
}

// CatalogService разрешение выбранных услуг в каталоге
type CatalogService interface {
	ResolveSelection(ctx context.Context, ids []string) (*models.Selection, error)
}

// SchedulePolicy политика расписания
type SchedulePolicy interface {
	ParseDate(value string) (time.Time, error)
	ValidateSlot(date time.Time, label string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счётчик исходов бронирования
type MetricsRecorder interface {
	ObserveBooking(result string)
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

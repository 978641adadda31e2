package get_available_slots

import (
	"context"
	"time"
)

// SlotLedger интерфейс реестра слотов (только чтение)
type SlotLedger interface {
	IsAvailable(ctx context.Context, date time.Time, label string) (bool, error)
	BookedTimesForDate(ctx context.Context, date time.Time) ([]string, error)
}

// SchedulePolicy политика расписания
type SchedulePolicy interface {
	ParseDate(value string) (time.Time, error)
	IsDateInPast(date time.Time) bool
	IsWithinBusinessHours(label string) bool
	Slots() []string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

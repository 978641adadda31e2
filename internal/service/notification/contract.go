package notification

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ServiceBooking/internal/integrations/mailer"
)

// Sender механизм доставки письма, одна попытка на вызов
type Sender interface {
	Send(ctx context.Context, email *mailer.Email) error
}

// Sleeper ожидание между попытками; возвращает ошибку, если ctx отменён раньше
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SchedulePolicy форматирование даты и времени в часовом поясе бизнеса
type SchedulePolicy interface {
	FormatDate(date time.Time) string
	FormatTime(label string) string
}

// MetricsRecorder счётчики доставки
type MetricsRecorder interface {
	ObserveNotificationAttempt(success bool)
	ObserveNotification(delivered bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealSleeper ждёт по таймеру с учётом отмены контекста
type RealSleeper struct{}

// Sleep ждёт d или отмены ctx
func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

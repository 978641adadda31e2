package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	"github.com/m04kA/SMC-ServiceBooking/internal/integrations/mailer"
)

// MaxAttempts число попыток доставки одного подтверждения
const MaxAttempts = 3

// Значения по умолчанию
const (
	DefaultBackoffUnit  = time.Second
	DefaultBusinessName = "DigitalPro"
)

// Config параметры доставки подтверждений
type Config struct {
	BackoffUnit  time.Duration
	BusinessName string
	SupportEmail string
}

// Dispatcher отправляет подтверждения бронирований с повторами.
// После неудачной попытки n ждёт 2^n * BackoffUnit; ошибки и паники отправителя наружу не выходят.
type Dispatcher struct {
	sender  Sender
	sleeper Sleeper
	policy  SchedulePolicy
	metrics MetricsRecorder
	cfg     Config
	logger  Logger
}

// NewDispatcher создает диспетчер. Нулевые поля cfg заменяются значениями по умолчанию
func NewDispatcher(
	sender Sender,
	sleeper Sleeper,
	policy SchedulePolicy,
	metrics MetricsRecorder,
	cfg Config,
	logger Logger,
) *Dispatcher {
	if cfg.BackoffUnit <= 0 {
		cfg.BackoffUnit = DefaultBackoffUnit
	}
	if cfg.BusinessName == "" {
		cfg.BusinessName = DefaultBusinessName
	}
	if sleeper == nil {
		sleeper = RealSleeper{}
	}

	return &Dispatcher{
		sender:  sender,
		sleeper: sleeper,
		policy:  policy,
		metrics: metrics,
		cfg:     cfg,
		logger:  logger,
	}
}

// SendConfirmation доставляет подтверждение бронирования.
// Возвращает true при первой успешной попытке и false, когда попытки исчерпаны,
// письмо не удалось собрать или ctx отменён во время ожидания.
func (d *Dispatcher) SendConfirmation(ctx context.Context, booking *domain.Booking, serviceNames []string) bool {
	email, err := d.render(booking, serviceNames)
	if err != nil {
		d.logger.Error("SendConfirmation: booking id=%s: %v", booking.ID, err)
		d.metrics.ObserveNotification(false)
		return false
	}

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		err := d.attempt(ctx, email)
		d.metrics.ObserveNotificationAttempt(err == nil)

		if err == nil {
			d.logger.Info("SendConfirmation: booking id=%s delivered to %s on attempt %d", booking.ID, email.To, attempt)
			d.metrics.ObserveNotification(true)
			return true
		}

		d.logger.Warn("SendConfirmation: booking id=%s attempt %d/%d failed: %v", booking.ID, attempt, MaxAttempts, err)
		if attempt == MaxAttempts {
			break
		}

		if err := d.sleeper.Sleep(ctx, d.Backoff(attempt)); err != nil {
			d.logger.Warn("SendConfirmation: booking id=%s retry aborted: %v", booking.ID, err)
			d.metrics.ObserveNotification(false)
			return false
		}
	}

	d.logger.Error("SendConfirmation: booking id=%s not delivered after %d attempts", booking.ID, MaxAttempts)
	d.metrics.ObserveNotification(false)
	return false
}

// Backoff возвращает паузу после неудачной попытки attempt (с 1): 2^attempt единиц
func (d *Dispatcher) Backoff(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * d.cfg.BackoffUnit
}

// DeliveryBudget худшее время SendConfirmation: все попытки по attemptTimeout и паузы между ними
func DeliveryBudget(attemptTimeout, backoffUnit time.Duration) time.Duration {
	budget := time.Duration(MaxAttempts) * attemptTimeout
	for attempt := 1; attempt < MaxAttempts; attempt++ {
		budget += time.Duration(1<<uint(attempt)) * backoffUnit
	}
	return budget
}

// attempt одна попытка доставки; паника отправителя превращается в ошибку
func (d *Dispatcher) attempt(ctx context.Context, email *mailer.Email) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrSenderPanic, p)
		}
	}()

	return d.sender.Send(ctx, email)
}

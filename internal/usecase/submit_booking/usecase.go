package submit_booking

import (
	"context"
	"time"
)

// UseCase оформление бронирования: создание и отправка подтверждения
type UseCase struct {
	creator       BookingCreator
	notifier      Notifier
	notifyTimeout time.Duration
	logger        Logger
}

// NewUseCase создает новый экземпляр use case.
// notifyTimeout ограничивает отправку подтверждения; 0 - без ограничения.
func NewUseCase(creator BookingCreator, notifier Notifier, notifyTimeout time.Duration, logger Logger) *UseCase {
	return &UseCase{
		creator:       creator,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		logger:        logger,
	}
}

// Execute создает бронирование и отправляет подтверждение.
// Ошибка доставки не отменяет бронирование: клиент получает предупреждение.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Создаем бронирование
	created, err := uc.creator.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Booking:      created.Booking,
		ServiceNames: created.ServiceNames,
	}

	// 2. Отправляем подтверждение вне единицы работы.
	// Отмена запроса клиентом не прерывает отправку, но она ограничена notifyTimeout,
	// чтобы ответ о созданном бронировании успел уйти клиенту.
	notifyCtx, cancel := uc.notifyContext(ctx)
	defer cancel()

	resp.NotificationSent = uc.notifier.SendConfirmation(notifyCtx, created.Booking, created.ServiceNames)
	if !resp.NotificationSent {
		uc.logger.Warn("SubmitBooking: confirmation for booking id=%s was not delivered to %s",
			created.Booking.ID, created.Booking.Customer.Email)
		resp.Warning = NotificationWarning
	}

	uc.logger.Info("SubmitBooking: booking id=%s submitted, notification_sent=%t", created.Booking.ID, resp.NotificationSent)
	return resp, nil
}

func (uc *UseCase) notifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if uc.notifyTimeout <= 0 {
		return detached, func() {}
	}
	return context.WithTimeout(detached, uc.notifyTimeout)
}

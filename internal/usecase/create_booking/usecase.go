package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	"github.com/m04kA/SMC-ServiceBooking/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-ServiceBooking/pkg/metrics"
	"github.com/m04kA/SMC-ServiceBooking/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	ledger       SlotLedger
	catalog      CatalogService
	policy       SchedulePolicy
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	ledger SlotLedger,
	catalog CatalogService,
	policy SchedulePolicy,
	txManager TransactionManager,
	metrics MetricsRecorder,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		ledger:       ledger,
		catalog:      catalog,
		policy:       policy,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Разрешение услуг, захват слота и сохранение бронирования идут одной сериализуемой
// единицей работы: либо применяется всё, либо ничего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	uc.metrics.ObserveBooking(outcome(err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	normalizeRequest(req)
	uc.logger.Info("CreateBooking: date=%s, time=%s, services=%v, email=%s",
		req.Date, req.Time, req.SubOfferingIDs, req.Customer.Email)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем дату и слот по политике расписания
	date, err := uc.policy.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}
	if err := uc.policy.ValidateSlot(date, req.Time); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 3. Генерируем ID и фиксируем время создания
	bookingID := uuid.NewString()
	now := uc.timeProvider.Now()

	var result *Response

	// 4. Выполняем операции в сериализуемой единице работы
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Разрешаем выбранные услуги и фиксируем цены
		selection, err := uc.catalog.ResolveSelection(txCtx, req.SubOfferingIDs)
		if err != nil {
			return err
		}

		// 4.2. Атомарно занимаем слот (compare-and-swap)
		if err := uc.ledger.Reserve(txCtx, date, req.Time, bookingID); err != nil {
			if errors.Is(err, ledger.ErrSlotTaken) {
				return fmt.Errorf("%w: %s %s", ErrSlotConflict, req.Date, req.Time)
			}
			return fmt.Errorf("%w: failed to reserve slot: %w", ErrInternal, err)
		}

		// 4.3. Создаем бронирование со снимком названий и цены
		booking := &domain.Booking{
			ID:             bookingID,
			SubOfferingIDs: selection.IDs(),
			ServiceNames:   selection.Names(),
			Date:           date,
			Time:           req.Time,
			Customer: domain.Customer{
				Name:  req.Customer.Name,
				Email: req.Customer.Email,
				Phone: req.Customer.Phone,
			},
			Message:    req.Message,
			Status:     domain.StatusConfirmed,
			TotalPrice: selection.Total,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		// 4.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = &Response{Booking: created, ServiceNames: created.ServiceNames}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, txmanager.ErrSerializationFailure):
			// Конкурентная транзакция заняла тот же слот
			uc.logger.Warn("CreateBooking: serialization failure for %s %s: %v", req.Date, req.Time, err)
			return nil, fmt.Errorf("%w: %s %s", ErrSlotConflict, req.Date, req.Time)
		case errors.Is(err, domain.ErrSlotConflict), errors.Is(err, domain.ErrInvalidSelection), errors.Is(err, domain.ErrValidation):
			uc.logger.Warn("CreateBooking: rejected: %v", err)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateBooking: %v", err)
			return nil, err
		default:
			uc.logger.Error("CreateBooking: unexpected error: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s for %s %s, total=%.2f",
		result.Booking.ID, req.Date, req.Time, result.Booking.TotalPrice)
	return result, nil
}

// outcome метка исхода для метрик
func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.BookingCreated
	case errors.Is(err, domain.ErrSlotConflict):
		return metrics.BookingSlotConflict
	case errors.Is(err, domain.ErrInvalidSelection):
		return metrics.BookingInvalidSelection
	case errors.Is(err, domain.ErrValidation):
		return metrics.BookingValidationError
	default:
		return metrics.BookingError
	}
}

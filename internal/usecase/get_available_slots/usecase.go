package get_available_slots

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	ledger    SlotLedger
	policy    SchedulePolicy
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(ledger SlotLedger, policy SchedulePolicy, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		ledger:    ledger,
		policy:    policy,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute возвращает все слоты дня с флагом доступности
func (uc *UseCase) Execute(ctx context.Context, dateValue string) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", dateValue)

	// 1. Разбираем и проверяем дату
	date, err := uc.parseDate(dateValue)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	// 2. Получаем занятые слоты
	booked, err := uc.BookedTimesForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	// 3. Собираем ответ по фиксированному списку слотов
	taken := make(map[string]struct{}, len(booked))
	for _, label := range booked {
		taken[label] = struct{}{}
	}

	labels := uc.policy.Slots()
	slots := make([]Slot, 0, len(labels))
	for _, label := range labels {
		_, isTaken := taken[label]
		slots = append(slots, Slot{Time: label, Available: !isTaken})
	}

	uc.logger.Info("GetAvailableSlots: date=%s, %d of %d slots booked", dateValue, len(booked), len(labels))

	return &Response{
		Date:        date,
		Slots:       slots,
		BookedTimes: booked,
	}, nil
}

// IsAvailable проверяет, свободен ли слот
func (uc *UseCase) IsAvailable(ctx context.Context, date time.Time, label string) (bool, error) {
	if !uc.policy.IsWithinBusinessHours(label) {
		return false, fmt.Errorf("%w: unknown slot %q", ErrInvalidInput, label)
	}

	var available bool
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		available, err = uc.ledger.IsAvailable(txCtx, date, label)
		return err
	})
	if err != nil {
		uc.logger.Error("IsAvailable: failed to read ledger for %s %s: %v", date.Format(domain.DateFormat), label, err)
		return false, fmt.Errorf("%w: failed to read ledger: %v", ErrInternal, err)
	}

	return available, nil
}

// BookedTimesForDate возвращает занятые слоты на дату в порядке следования
func (uc *UseCase) BookedTimesForDate(ctx context.Context, date time.Time) ([]string, error) {
	var booked []string
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		booked, err = uc.ledger.BookedTimesForDate(txCtx, date)
		return err
	})
	if err != nil {
		uc.logger.Error("BookedTimesForDate: failed to read ledger for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to read ledger: %v", ErrInternal, err)
	}

	if booked == nil {
		booked = []string{}
	}
	return booked, nil
}

func (uc *UseCase) parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := uc.policy.ParseDate(value)
	if err != nil {
		return time.Time{}, err
	}

	if uc.policy.IsDateInPast(date) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrDateInPast, value)
	}

	return date, nil
}

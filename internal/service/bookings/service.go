package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ServiceBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ServiceBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение, отмена и статистика
type Service struct {
	bookingRepo  BookingRepository
	ledger       SlotLedger
	policy       SchedulePolicy
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	ledger SlotLedger,
	policy SchedulePolicy,
	txManager TransactionManager,
	metrics MetricsRecorder,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		ledger:       ledger,
		policy:       policy,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	var booking *domain.Booking
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.bookingRepo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, fmt.Errorf("%w: id=%s", ErrBookingNotFound, id)
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	// 1. Конвертируем request в domain фильтр
	filter, err := s.toDomainFilter(req)
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	// 2. Читаем в одной единице работы, чтобы не увидеть незавершённое бронирование
	var bookings []*domain.Booking
	err = s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		bookings, err = s.bookingRepo.List(txCtx, filter)
		return err
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование и освобождает его слот в одной единице работы.
// Возвращает false, если бронирование не найдено или уже отменено.
func (s *Service) Cancel(ctx context.Context, id string) (bool, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	cancelled := false
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Меняем статус
		if err := s.bookingRepo.Cancel(txCtx, id, s.timeProvider.Now()); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) || errors.Is(err, bookingRepo.ErrCannotCancel) {
				s.logger.Warn("Cancel: booking id=%s not cancellable: %v", id, err)
				return nil
			}
			return err
		}

		// 2. Освобождаем слот
		released, err := s.ledger.Release(txCtx, id)
		if err != nil {
			return err
		}
		if !released {
			s.logger.Warn("Cancel: booking id=%s held no slot", id)
		}

		cancelled = true
		return nil
	})
	if err != nil {
		s.logger.Error("Cancel: failed to cancel booking id=%s: %v", id, err)
		return false, fmt.Errorf("%w: Cancel - %v", ErrInternal, err)
	}

	if cancelled {
		s.metrics.ObserveCancellation()
		s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	}
	return cancelled, nil
}

// Stats возвращает агрегаты для админ-панели
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	var stats *domain.BookingStats
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		stats, err = s.bookingRepo.Stats(txCtx)
		return err
	})
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStats(stats), nil
}

func (s *Service) toDomainFilter(req *models.ListBookingsRequest) (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter
	if req == nil {
		return filter, nil
	}

	if req.Status != nil && *req.Status != "" {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			return filter, fmt.Errorf("%w: status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	if req.Date != nil && *req.Date != "" {
		date, err := s.policy.ParseDate(*req.Date)
		if err != nil {
			return filter, err
		}
		filter.Date = &date
	}

	if req.Email != nil {
		if email := strings.TrimSpace(*req.Email); email != "" {
			filter.Email = &email
		}
	}

	return filter, nil
}

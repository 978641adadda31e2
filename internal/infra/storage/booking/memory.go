package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

// MemoryRepository хранилище бронирований в памяти
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	order    []string // порядок создания
}

// NewMemoryRepository создает пустое хранилище бронирований
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		bookings: make(map[string]*domain.Booking),
		order:    make([]string, 0),
	}
}

// Create сохраняет новое бронирование
func (r *MemoryRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; ok {
		return nil, fmt.Errorf("%w: id=%s", ErrDuplicateID, booking.ID)
	}

	r.bookings[booking.ID] = booking.Clone()
	r.order = append(r.order, booking.ID)

	return booking.Clone(), nil
}

// GetByID получает бронирование по ID
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrBookingNotFound, id)
	}
	return b.Clone(), nil
}

// List возвращает бронирования по фильтру, новые первыми
func (r *MemoryRepository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		b := r.bookings[r.order[i]]
		if matches(b, filter) {
			result = append(result, b.Clone())
		}
	}
	return result, nil
}

// Cancel переводит бронирование в статус cancelled
func (r *MemoryRepository) Cancel(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("%w: id=%s", ErrBookingNotFound, id)
	}
	if !b.CanBeCancelled() {
		return fmt.Errorf("%w: id=%s status=%s", ErrCannotCancel, id, b.Status)
	}

	b.Status = domain.StatusCancelled
	b.CancelledAt = &at
	b.UpdatedAt = at

	return nil
}

// Stats считает агрегаты для админ-панели
func (r *MemoryRepository) Stats(ctx context.Context) (*domain.BookingStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &domain.BookingStats{}
	for _, b := range r.bookings {
		stats.Total++
		switch b.Status {
		case domain.StatusConfirmed:
			stats.Confirmed++
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusCancelled:
			stats.Cancelled++
		}
		if b.IsActive() {
			stats.Revenue += b.TotalPrice
		}
	}
	return stats, nil
}

func matches(b *domain.Booking, filter domain.BookingsFilter) bool {
	if filter.Status != nil && b.Status != *filter.Status {
		return false
	}
	if filter.Date != nil && b.Date.Format(domain.DateFormat) != filter.Date.Format(domain.DateFormat) {
		return false
	}
	if filter.Email != nil && !strings.EqualFold(b.Customer.Email, *filter.Email) {
		return false
	}
	return true
}

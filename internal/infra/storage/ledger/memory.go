package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

// MemoryRepository реестр слотов в памяти.
// Одна запись на ключ (дата, время); освобождённая запись переиспользуется при следующем бронировании.
type MemoryRepository struct {
	mu        sync.RWMutex
	entries   map[domain.SlotKey]*domain.SlotEntry
	byBooking map[string]domain.SlotKey
}

// NewMemoryRepository создает пустой реестр слотов
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		entries:   make(map[domain.SlotKey]*domain.SlotEntry),
		byBooking: make(map[string]domain.SlotKey),
	}
}

// IsAvailable возвращает true, если для слота нет занятой записи
func (r *MemoryRepository) IsAvailable(ctx context.Context, date time.Time, label string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[domain.NewSlotKey(date, label)]
	return !ok || !entry.IsBooked, nil
}

// BookedTimesForDate возвращает занятые слоты даты в порядке времени суток
func (r *MemoryRepository) BookedTimesForDate(ctx context.Context, date time.Time) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day := date.Format(domain.DateFormat)
	times := make([]string, 0)
	for key, entry := range r.entries {
		if key.Date == day && entry.IsBooked {
			times = append(times, key.Time)
		}
	}

	sortByClock(times)
	return times, nil
}

// Reserve атомарно занимает слот (compare-and-swap).
// Если слот уже занят, возвращает ErrSlotTaken и ничего не меняет.
func (r *MemoryRepository) Reserve(ctx context.Context, date time.Time, label, bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := domain.NewSlotKey(date, label)
	entry, ok := r.entries[key]
	if ok && entry.IsBooked {
		return fmt.Errorf("%w: %s %s", ErrSlotTaken, key.Date, key.Time)
	}

	if !ok {
		entry = &domain.SlotEntry{Date: date, Time: label}
		r.entries[key] = entry
	}

	id := bookingID
	entry.IsBooked = true
	entry.BookingID = &id
	r.byBooking[bookingID] = key

	return nil
}

// Release освобождает слот, занятый бронированием.
// Возвращает false, если бронирование не удерживает ни одного слота.
func (r *MemoryRepository) Release(ctx context.Context, bookingID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.byBooking[bookingID]
	if !ok {
		return false, nil
	}
	delete(r.byBooking, bookingID)

	entry, ok := r.entries[key]
	if !ok || !entry.IsBooked {
		return false, nil
	}

	entry.IsBooked = false
	entry.BookingID = nil
	return true, nil
}

// Entry возвращает копию записи реестра для слота
func (r *MemoryRepository) Entry(ctx context.Context, date time.Time, label string) (*domain.SlotEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := domain.NewSlotKey(date, label)
	entry, ok := r.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrEntryNotFound, key.Date, key.Time)
	}

	c := *entry
	if entry.BookingID != nil {
		id := *entry.BookingID
		c.BookingID = &id
	}
	return &c, nil
}

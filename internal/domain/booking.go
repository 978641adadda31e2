package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Customer contact details submitted with a booking
type Customer struct {
	Name  string
	Email string
	Phone string
}

// Booking represents a confirmed claim on one slot
type Booking struct {
	ID             string
	SubOfferingIDs []string // ordered as selected by the customer
	Date           time.Time
	Time           string // slot label, e.g. "10:00 AM"
	Customer       Customer
	Message        *string
	Status         BookingStatus

	// Snapshot of the catalog at creation time, never recomputed
	ServiceNames []string
	TotalPrice   float64

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SlotKey returns the ledger key this booking occupies
func (b *Booking) SlotKey() SlotKey {
	return NewSlotKey(b.Date, b.Time)
}

// IsActive returns true if the booking still holds its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Clone returns a deep copy so callers never alias stored state
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	c.SubOfferingIDs = append([]string(nil), b.SubOfferingIDs...)
	c.ServiceNames = append([]string(nil), b.ServiceNames...)
	if b.Message != nil {
		msg := *b.Message
		c.Message = &msg
	}
	if b.CancelledAt != nil {
		at := *b.CancelledAt
		c.CancelledAt = &at
	}
	return &c
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	Status *BookingStatus // Фильтр по статусу (опционально)
	Date   *time.Time     // Фильтр по дате слота (опционально)
	Email  *string        // Фильтр по email клиента (опционально, без учета регистра)
}

// BookingStats агрегированная статистика для админ-панели
type BookingStats struct {
	Total     int
	Confirmed int
	Pending   int
	Cancelled int
	Revenue   float64 // сумма TotalPrice неотменённых бронирований
}

package domain

import "time"

// SlotKey identifies a bookable appointment window
type SlotKey struct {
	Date string // YYYY-MM-DD in the business timezone
	Time string // slot label
}

// NewSlotKey builds a key from a calendar date and a slot label
func NewSlotKey(date time.Time, label string) SlotKey {
	return SlotKey{Date: date.Format(DateFormat), Time: label}
}

// SlotEntry represents one row of the slot ledger
type SlotEntry struct {
	Date      time.Time
	Time      string
	IsBooked  bool
	BookingID *string // valid only while IsBooked
}

// Key returns the ledger key of the entry
func (s *SlotEntry) Key() SlotKey {
	return NewSlotKey(s.Date, s.Time)
}

// AvailableSlot represents a slot as shown to customers
type AvailableSlot struct {
	Time      string
	Available bool
}

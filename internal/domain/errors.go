package domain

import "errors"

// Error taxonomy shared by every layer.
// Package-level sentinels wrap one of these so callers can match either level with errors.Is.
var (
	// ErrValidation malformed input (empty name, missing contact field, past date, unknown slot)
	ErrValidation = errors.New("validation error")

	// ErrNotFound reference to a nonexistent offering, sub-offering or booking
	ErrNotFound = errors.New("not found")

	// ErrInvalidSelection booking references a sub-offering that is no longer in the catalog
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrSlotConflict the slot was claimed by another booking
	ErrSlotConflict = errors.New("slot conflict")
)

package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest фильтры списка бронирований, все опциональны
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"`
	Date   *string `json:"date,omitempty"` // YYYY-MM-DD
	Email  *string `json:"email,omitempty"`
}

// Response модели

// CustomerResponse контактные данные клиента
type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             string           `json:"id"`
	SubOfferingIDs []string         `json:"subOfferingIds"`
	ServiceNames   []string         `json:"serviceNames"`
	Date           string           `json:"date"` // "2025-03-10"
	Time           string           `json:"time"` // "10:00 AM"
	Customer       CustomerResponse `json:"customer"`
	Message        *string          `json:"message,omitempty"`
	TotalPrice     float64          `json:"totalPrice"`
	Status         string           `json:"status"`
	CancelledAt    *time.Time       `json:"cancelledAt,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatsResponse статистика для админ-панели
type StatsResponse struct {
	TotalBookings     int     `json:"totalBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	Revenue           float64 `json:"revenue"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:             b.ID,
		SubOfferingIDs: append([]string{}, b.SubOfferingIDs...),
		ServiceNames:   append([]string{}, b.ServiceNames...),
		Date:           b.Date.Format(domain.DateFormat),
		Time:           b.Time,
		Customer: CustomerResponse{
			Name:  b.Customer.Name,
			Email: b.Customer.Email,
			Phone: b.Customer.Phone,
		},
		Message:     b.Message,
		TotalPrice:  b.TotalPrice,
		Status:      string(b.Status),
		CancelledAt: b.CancelledAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if r := FromDomainBooking(b); r != nil {
			resp.Bookings = append(resp.Bookings, *r)
		}
	}

	return resp
}

// FromDomainStats конвертирует статистику в DTO
func FromDomainStats(s *domain.BookingStats) *StatsResponse {
	return &StatsResponse{
		TotalBookings:     s.Total,
		ConfirmedBookings: s.Confirmed,
		PendingBookings:   s.Pending,
		CancelledBookings: s.Cancelled,
		Revenue:           s.Revenue,
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return domain.BookingStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}

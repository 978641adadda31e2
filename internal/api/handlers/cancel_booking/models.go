package cancel_booking

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID        string `json:"id"`
	Cancelled bool   `json:"cancelled"` // false - бронирование не найдено или уже отменено
}

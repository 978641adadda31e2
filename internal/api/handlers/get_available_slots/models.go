package get_available_slots

import (
	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ServiceBooking/internal/usecase/get_available_slots"
)

// SlotResponse HTTP response model
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date        string         `json:"date"`
	Slots       []SlotResponse `json:"slots"`
	BookedTimes []string       `json:"bookedTimes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{Time: s.Time, Available: s.Available})
	}

	booked := resp.BookedTimes
	if booked == nil {
		booked = []string{}
	}

	return &AvailableSlotsResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		Slots:       slots,
		BookedTimes: booked,
	}
}

package list_bookings

import (
	"net/url"

	"github.com/m04kA/SMC-ServiceBooking/internal/service/bookings/models"
)

// ToServiceRequest собирает фильтры из query параметров: status, date, email
func ToServiceRequest(query url.Values) *models.ListBookingsRequest {
	return &models.ListBookingsRequest{
		Status: optional(query, "status"),
		Date:   optional(query, "date"),
		Email:  optional(query, "email"),
	}
}

func optional(query url.Values, key string) *string {
	value := query.Get(key)
	if value == "" {
		return nil
	}
	return &value
}

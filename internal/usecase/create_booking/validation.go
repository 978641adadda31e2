package create_booking

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// normalizeRequest убирает пробелы по краям, пустое сообщение превращает в nil
func normalizeRequest(req *Request) {
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	req.Customer.Name = strings.TrimSpace(req.Customer.Name)
	req.Customer.Email = strings.TrimSpace(req.Customer.Email)
	req.Customer.Phone = strings.TrimSpace(req.Customer.Phone)

	for i, id := range req.SubOfferingIDs {
		req.SubOfferingIDs[i] = strings.TrimSpace(id)
	}

	if req.Message != nil {
		msg := strings.TrimSpace(*req.Message)
		if msg == "" {
			req.Message = nil
		} else {
			req.Message = &msg
		}
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

package schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = fmt.Errorf("%w: schedule: invalid date, expected YYYY-MM-DD", domain.ErrValidation)

	// ErrDateInPast возвращается, когда дата раньше минимально допустимой
	ErrDateInPast = fmt.Errorf("%w: schedule: date is in the past", domain.ErrValidation)

	// ErrOutsideBusinessHours возвращается, когда время не является одним из слотов
	ErrOutsideBusinessHours = fmt.Errorf("%w: schedule: time is not an offerable slot", domain.ErrValidation)

	// ErrTimezone возвращается, если не удалось загрузить часовой пояс
	ErrTimezone = errors.New("schedule: failed to load business timezone")
)

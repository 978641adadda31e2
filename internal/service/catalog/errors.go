package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

var (
	// ErrOfferingNotFound возвращается, когда категория не найдена
	ErrOfferingNotFound = fmt.Errorf("offering %w", domain.ErrNotFound)

	// ErrSubOfferingNotFound возвращается, когда услуга не найдена в категории
	ErrSubOfferingNotFound = fmt.Errorf("sub-offering %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: invalid input data", domain.ErrValidation)

	// ErrInvalidSelection возвращается, когда выбранная услуга больше не существует в каталоге
	ErrInvalidSelection = fmt.Errorf("%w: selection no longer available, please re-select", domain.ErrInvalidSelection)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)

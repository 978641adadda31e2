package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

var (
	// ErrOfferingNotFound возвращается, когда категория не найдена
	ErrOfferingNotFound = fmt.Errorf("%w: catalog.repository: offering not found", domain.ErrNotFound)

	// ErrSubOfferingNotFound возвращается, когда услуга не найдена ни в одной категории
	ErrSubOfferingNotFound = fmt.Errorf("%w: catalog.repository: sub-offering not found", domain.ErrNotFound)

	// ErrDuplicateID возвращается при попытке сохранить категорию с уже существующим ID
	ErrDuplicateID = errors.New("catalog.repository: duplicate id")
)

package ledger

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

var (
	// ErrSlotTaken возвращается, когда слот уже занят другим бронированием
	ErrSlotTaken = fmt.Errorf("%w: ledger.repository: slot already booked", domain.ErrSlotConflict)

	// ErrEntryNotFound возвращается, когда для слота нет записи в реестре
	ErrEntryNotFound = fmt.Errorf("%w: ledger.repository: slot entry not found", domain.ErrNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("ledger.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("ledger.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("ledger.repository: failed to scan row")
)

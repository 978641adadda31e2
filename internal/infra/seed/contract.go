package seed

import (
	"context"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

// CatalogWriter хранилище, в которое загружается каталог
type CatalogWriter interface {
	Create(ctx context.Context, offering *domain.Offering) (*domain.Offering, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

package catalog

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

// CatalogRepository интерфейс хранилища каталога
type CatalogRepository interface {
	List(ctx context.Context) ([]*domain.Offering, error)
	GetByID(ctx context.Context, id string) (*domain.Offering, error)
	Create(ctx context.Context, offering *domain.Offering) (*domain.Offering, error)
	Update(ctx context.Context, offering *domain.Offering) (*domain.Offering, error)
	Delete(ctx context.Context, id string) (bool, error)
	FindSubOfferings(ctx context.Context, ids []string) ([]domain.SubOffering, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

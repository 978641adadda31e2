package list_offerings

import (
	"context"

	"github.com/m04kA/SMC-ServiceBooking/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context) (*models.OfferingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package add_sub_offering

import (
	"context"

	"github.com/m04kA/SMC-ServiceBooking/internal/service/catalog/models"
)

type CatalogService interface {
	AddSubOffering(ctx context.Context, offeringID string, req *models.SubOfferingInput) (*models.SubOfferingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

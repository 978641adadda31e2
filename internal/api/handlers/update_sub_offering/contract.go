package update_sub_offering

import (
	"context"

	"github.com/m04kA/SMC-ServiceBooking/internal/service/catalog/models"
)

type CatalogService interface {
	UpdateSubOffering(ctx context.Context, offeringID, subID string, req *models.UpdateSubOfferingRequest) (*models.SubOfferingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package delete_sub_offering

import "context"

type CatalogService interface {
	DeleteSubOffering(ctx context.Context, offeringID, subID string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

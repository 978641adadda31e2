package list_bookings

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	"github.com/m04kA/SMC-ServiceBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-ServiceBooking/pkg/logger"
)

type fakeService struct {
	err error
	got *models.ListBookingsRequest
}

func (f *fakeService) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: "b-1", Status: "confirmed"}}}, nil
}

func TestHandler_PassesFilters(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?status=confirmed&date=2025-03-10", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "confirmed", *svc.got.Status)
	require.NotNil(t, svc.got.Date)
	assert.Equal(t, "2025-03-10", *svc.got.Date)
	assert.Nil(t, svc.got.Email)
	assert.Contains(t, rec.Body.String(), `"id":"b-1"`)
}

func TestHandler_InvalidFilter(t *testing.T) {
	h := NewHandler(&fakeService{err: fmt.Errorf("%w: status", domain.ErrValidation)}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?status=unknown", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

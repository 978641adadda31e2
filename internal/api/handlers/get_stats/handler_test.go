package get_stats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ServiceBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-ServiceBooking/pkg/logger"
)

type fakeService struct {
	stats *models.StatsResponse
	err   error
}

func (f *fakeService) Stats(ctx context.Context) (*models.StatsResponse, error) {
	return f.stats, f.err
}

func serve(svc *fakeService) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil))
	return rec
}

func TestHandler(t *testing.T) {
	rec := serve(&fakeService{stats: &models.StatsResponse{
		TotalBookings:     3,
		ConfirmedBookings: 2,
		CancelledBookings: 1,
		Revenue:           247,
	}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"totalBookings": 3,
		"confirmedBookings": 2,
		"pendingBookings": 0,
		"cancelledBookings": 1,
		"revenue": 247
	}`, rec.Body.String())
}

func TestHandler_InternalError(t *testing.T) {
	rec := serve(&fakeService{err: errors.New("db down")})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, rec.Body.String())
}

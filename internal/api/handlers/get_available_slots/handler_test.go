package get_available_slots

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ServiceBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ServiceBooking/pkg/logger"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, date string) (*getAvailableSlots.Response, error) {
	return f.resp, f.err
}

func TestHandler(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Slots:       []getAvailableSlots.Slot{{Time: "09:00 AM", Available: true}, {Time: "10:00 AM", Available: false}},
		BookedTimes: []string{"10:00 AM"},
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots?date=2025-03-10", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date": "2025-03-10",
		"slots": [{"time": "09:00 AM", "available": true}, {"time": "10:00 AM", "available": false}],
		"bookedTimes": ["10:00 AM"]
	}`, rec.Body.String())
}

func TestHandler_BadDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: fmt.Errorf("%w: in the past", domain.ErrValidation)}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots?date=2020-01-01", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

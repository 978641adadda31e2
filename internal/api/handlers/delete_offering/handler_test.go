package delete_offering

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ServiceBooking/pkg/logger"
)

type fakeService struct {
	existing map[string]bool
	err      error
}

func (f *fakeService) Delete(ctx context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	ok := f.existing[id]
	delete(f.existing, id)
	return ok, nil
}

func request(id string) *http.Request {
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/offerings/"+id, nil)
	return mux.SetURLVars(r, map[string]string{"offeringId": id})
}

func TestHandler(t *testing.T) {
	h := NewHandler(&fakeService{existing: map[string]bool{"os-install": true}}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, request("os-install"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted": true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Handle(rec, request("os-install"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted": false}`, rec.Body.String())
}

func TestHandler_InternalError(t *testing.T) {
	h := NewHandler(&fakeService{err: errors.New("boom")}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, request("os-install"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

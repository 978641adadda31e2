package delete_sub_offering

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ServiceBooking/internal/service/catalog"
	"github.com/m04kA/SMC-ServiceBooking/pkg/logger"
)

type fakeService struct {
	deleted bool
	err     error
}

func (f *fakeService) DeleteSubOffering(ctx context.Context, offeringID, subID string) (bool, error) {
	return f.deleted, f.err
}

func serve(svc *fakeService) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/offerings/os-install/sub-offerings/dual-boot", nil)
	r = mux.SetURLVars(r, map[string]string{"offeringId": "os-install", "subId": "dual-boot"})
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name     string
		svc      *fakeService
		wantCode int
		wantBody string
	}{
		{name: "deleted", svc: &fakeService{deleted: true}, wantCode: http.StatusOK, wantBody: `{"deleted": true}`},
		{name: "unknown sub-offering", svc: &fakeService{deleted: false}, wantCode: http.StatusOK, wantBody: `{"deleted": false}`},
		{
			name:     "unknown offering",
			svc:      &fakeService{err: catalog.ErrOfferingNotFound},
			wantCode: http.StatusNotFound,
			wantBody: `{"error": "offering not found"}`,
		},
		{
			name:     "unexpected error",
			svc:      &fakeService{err: errors.New("boom")},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error": "internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt.svc)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

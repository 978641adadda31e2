package get_offering

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServiceBooking/internal/service/catalog"
	"github.com/m04kA/SMC-ServiceBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-ServiceBooking/pkg/logger"
)

type fakeService struct {
	offering *models.OfferingResponse
	err      error
	gotID    string
}

func (f *fakeService) GetByID(ctx context.Context, id string) (*models.OfferingResponse, error) {
	f.gotID = id
	return f.offering, f.err
}

func serve(svc *fakeService, offeringID string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())
	r := httptest.NewRequest(http.MethodGet, "/api/v1/offerings/"+offeringID, nil)
	r = mux.SetURLVars(r, map[string]string{"offeringId": offeringID})
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestHandler(t *testing.T) {
	svc := &fakeService{offering: &models.OfferingResponse{
		ID:   "os-install",
		Name: "OS Reinstallation",
		SubOfferings: []models.SubOfferingResponse{
			{ID: "windows-install", Name: "Windows Installation", Price: 99},
		},
	}}

	rec := serve(svc, "os-install")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "os-install", svc.gotID)

	var body models.OfferingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OS Reinstallation", body.Name)
	require.Len(t, body.SubOfferings, 1)
	assert.Equal(t, 99.0, body.SubOfferings[0].Price)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unknown offering", err: catalog.ErrOfferingNotFound, want: http.StatusNotFound},
		{name: "unexpected error", err: errors.New("store unavailable"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, "missing")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

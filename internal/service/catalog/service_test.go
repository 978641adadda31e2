package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ServiceBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-ServiceBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-ServiceBooking/pkg/logger"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newService() *Service {
	return NewService(catalogRepo.NewRepository(), fixedTime{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}, logger.NewNop())
}

func createOS(t *testing.T, s *Service) *models.OfferingResponse {
	t.Helper()
	resp, err := s.Create(context.Background(), &models.CreateOfferingRequest{
		Name: "OS Reinstallation",
		Icon: "Monitor",
		SubOfferings: []models.SubOfferingInput{
			{Name: "Windows Installation", Price: 99, Duration: "2-3 hours"},
			{Name: "Linux Installation", Price: 89, Duration: "2-3 hours"},
		},
	})
	require.NoError(t, err)
	return resp
}

func TestService_Create(t *testing.T) {
	s := newService()

	resp := createOS(t, s)

	assert.NotEmpty(t, resp.ID)
	require.Len(t, resp.SubOfferings, 2)
	assert.NotEmpty(t, resp.SubOfferings[0].ID)
	assert.NotEqual(t, resp.SubOfferings[0].ID, resp.SubOfferings[1].ID)

	_, err := s.Create(context.Background(), &models.CreateOfferingRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.Create(context.Background(), &models.CreateOfferingRequest{
		Name:         "Support",
		SubOfferings: []models.SubOfferingInput{{Name: "Remote", Price: -1}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Update(t *testing.T) {
	s := newService()
	ctx := context.Background()
	created := createOS(t, s)
	windowsID := created.SubOfferings[0].ID

	updated, err := s.Update(ctx, created.ID, &models.UpdateOfferingRequest{
		Name: "OS Setup",
		Icon: "Monitor",
		SubOfferings: []models.SubOfferingInput{
			{ID: windowsID, Name: "Windows 11 Installation", Price: 109},
			{Name: "Dual Boot Setup", Price: 149},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "OS Setup", updated.Name)
	require.Len(t, updated.SubOfferings, 2)
	assert.Equal(t, windowsID, updated.SubOfferings[0].ID)
	assert.Equal(t, 109.0, updated.SubOfferings[0].Price)
	assert.NotEmpty(t, updated.SubOfferings[1].ID)
	assert.NotEqual(t, created.SubOfferings[1].ID, updated.SubOfferings[1].ID)

	t.Run("unknown offering", func(t *testing.T) {
		_, err := s.Update(ctx, "missing", &models.UpdateOfferingRequest{Name: "X"})
		assert.ErrorIs(t, err, ErrOfferingNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown sub-offering id", func(t *testing.T) {
		_, err := s.Update(ctx, created.ID, &models.UpdateOfferingRequest{
			Name:         "OS Setup",
			SubOfferings: []models.SubOfferingInput{{ID: "ghost", Name: "Ghost"}},
		})
		assert.ErrorIs(t, err, ErrSubOfferingNotFound)
	})

	t.Run("duplicate sub-offering ids", func(t *testing.T) {
		_, err := s.Update(ctx, created.ID, &models.UpdateOfferingRequest{
			Name: "OS Setup",
			SubOfferings: []models.SubOfferingInput{
				{ID: windowsID, Name: "A"},
				{ID: windowsID, Name: "B"},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_DeleteIsIdempotent(t *testing.T) {
	s := newService()
	ctx := context.Background()
	created := createOS(t, s)

	deleted, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestService_SubOfferingCRUD(t *testing.T) {
	s := newService()
	ctx := context.Background()
	created := createOS(t, s)

	added, err := s.AddSubOffering(ctx, created.ID, &models.SubOfferingInput{Name: "Dual Boot Setup", Price: 149})
	require.NoError(t, err)

	price := 129.0
	changed, err := s.UpdateSubOffering(ctx, created.ID, added.ID, &models.UpdateSubOfferingRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Dual Boot Setup", changed.Name)
	assert.Equal(t, 129.0, changed.Price)

	_, err = s.UpdateSubOffering(ctx, created.ID, "ghost", &models.UpdateSubOfferingRequest{Price: &price})
	assert.ErrorIs(t, err, ErrSubOfferingNotFound)

	deleted, err := s.DeleteSubOffering(ctx, created.ID, added.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteSubOffering(ctx, created.ID, added.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = s.DeleteSubOffering(ctx, "missing", added.ID)
	assert.ErrorIs(t, err, ErrOfferingNotFound)

	offering, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, offering.SubOfferings, 2)
}

func TestService_ResolveSelection(t *testing.T) {
	s := newService()
	ctx := context.Background()
	created := createOS(t, s)
	windows, linux := created.SubOfferings[0].ID, created.SubOfferings[1].ID

	selection, err := s.ResolveSelection(ctx, []string{linux, windows})
	require.NoError(t, err)
	assert.Equal(t, 188.0, selection.Total)
	assert.Equal(t, []string{"Linux Installation", "Windows Installation"}, selection.Names())
	assert.Equal(t, []string{linux, windows}, selection.IDs())

	_, err = s.ResolveSelection(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.ResolveSelection(ctx, []string{windows, windows})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.ResolveSelection(ctx, []string{windows, "removed"})
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
}

package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
	"github.com/m04kA/SMC-ServiceBooking/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-ServiceBooking/internal/service/schedule"
	"github.com/m04kA/SMC-ServiceBooking/pkg/logger"
	"github.com/m04kA/SMC-ServiceBooking/pkg/memtx"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type brokenLedger struct{}

func (brokenLedger) IsAvailable(context.Context, time.Time, string) (bool, error) {
	return false, errors.New("connection reset")
}

func (brokenLedger) BookedTimesForDate(context.Context, time.Time) ([]string, error) {
	return nil, errors.New("connection reset")
}

func newUseCase(t *testing.T, l SlotLedger) (*UseCase, *schedule.Policy) {
	t.Helper()
	policy, err := schedule.NewPolicy(fixedTime{t: time.Date(2025, 3, 1, 3, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	return NewUseCase(l, policy, memtx.New(), logger.NewNop()), policy
}

func TestUseCase_Execute(t *testing.T) {
	store := ledger.NewMemoryRepository()
	uc, policy := newUseCase(t, store)
	ctx := context.Background()

	date, err := policy.ParseDate("2025-03-10")
	require.NoError(t, err)
	require.NoError(t, store.Reserve(ctx, date, "02:00 PM", "b2"))
	require.NoError(t, store.Reserve(ctx, date, "10:00 AM", "b1"))

	resp, err := uc.Execute(ctx, "2025-03-10")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", resp.Date.Format(domain.DateFormat))
	require.Len(t, resp.Slots, 9)
	assert.Equal(t, []string{"10:00 AM", "02:00 PM"}, resp.BookedTimes)
	for _, slot := range resp.Slots {
		booked := slot.Time == "10:00 AM" || slot.Time == "02:00 PM"
		assert.Equal(t, !booked, slot.Available, slot.Time)
	}
	assert.Equal(t, "09:00 AM", resp.Slots[0].Time)
	assert.Equal(t, "05:00 PM", resp.Slots[8].Time)
}

func TestUseCase_Execute_EmptyDay(t *testing.T) {
	uc, _ := newUseCase(t, ledger.NewMemoryRepository())

	resp, err := uc.Execute(context.Background(), "2025-03-01")
	require.NoError(t, err)

	assert.Empty(t, resp.BookedTimes)
	assert.NotNil(t, resp.BookedTimes)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

func TestUseCase_Execute_InvalidDate(t *testing.T) {
	uc, _ := newUseCase(t, ledger.NewMemoryRepository())
	ctx := context.Background()

	_, err := uc.Execute(ctx, "2025-02-28")
	assert.ErrorIs(t, err, ErrDateInPast)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Execute(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, "March 10")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUseCase_IsAvailable(t *testing.T) {
	store := ledger.NewMemoryRepository()
	uc, policy := newUseCase(t, store)
	ctx := context.Background()
	date, _ := policy.ParseDate("2025-03-10")

	ok, err := uc.IsAvailable(ctx, date, "11:00 AM")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Reserve(ctx, date, "11:00 AM", "b1"))

	ok, err = uc.IsAvailable(ctx, date, "11:00 AM")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = uc.IsAvailable(ctx, date, "11:30 AM")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUseCase_LedgerFailure(t *testing.T) {
	uc, _ := newUseCase(t, brokenLedger{})

	_, err := uc.Execute(context.Background(), "2025-03-10")

	assert.ErrorIs(t, err, ErrInternal)
}

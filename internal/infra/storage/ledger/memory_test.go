package ledger

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestMemoryRepository_ReserveIsCompareAndSwap(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Reserve(ctx, day, "10:00 AM", "b1"))

	err := repo.Reserve(ctx, day, "10:00 AM", "b2")
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.ErrorIs(t, err, domain.ErrSlotConflict)

	entry, err := repo.Entry(ctx, day, "10:00 AM")
	require.NoError(t, err)
	assert.True(t, entry.IsBooked)
	require.NotNil(t, entry.BookingID)
	assert.Equal(t, "b1", *entry.BookingID)
}

func TestMemoryRepository_ReleaseReusesEntry(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Reserve(ctx, day, "10:00 AM", "b1"))

	released, err := repo.Release(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, released)

	available, err := repo.IsAvailable(ctx, day, "10:00 AM")
	require.NoError(t, err)
	assert.True(t, available)

	entry, err := repo.Entry(ctx, day, "10:00 AM")
	require.NoError(t, err)
	assert.False(t, entry.IsBooked)
	assert.Nil(t, entry.BookingID)

	released, err = repo.Release(ctx, "b1")
	require.NoError(t, err)
	assert.False(t, released)

	require.NoError(t, repo.Reserve(ctx, day, "10:00 AM", "b2"))
	assert.Len(t, repo.entries, 1)
}

func TestMemoryRepository_BookedTimesForDate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Reserve(ctx, day, "02:00 PM", "b1"))
	require.NoError(t, repo.Reserve(ctx, day, "09:00 AM", "b2"))
	require.NoError(t, repo.Reserve(ctx, day, "11:00 AM", "b3"))
	require.NoError(t, repo.Reserve(ctx, day.AddDate(0, 0, 1), "10:00 AM", "b4"))
	_, err := repo.Release(ctx, "b3")
	require.NoError(t, err)

	times, err := repo.BookedTimesForDate(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM", "02:00 PM"}, times)

	times, err = repo.BookedTimesForDate(ctx, day.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestMemoryRepository_EntryNotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Entry(context.Background(), day, "10:00 AM")

	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestMemoryRepository_ConcurrentReserve(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := repo.Reserve(ctx, day, "03:00 PM", string(rune('a'+i))); err == nil {
				atomic.AddInt32(&wins, 1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
}

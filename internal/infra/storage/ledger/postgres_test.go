package ledger

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

func TestReserveQuery(t *testing.T) {
	query, args, err := reserveQuery(day, "10:00 AM", "b1")
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO slot_ledger (slot_date,slot_time,is_booked,booking_id) VALUES ($1,$2,$3,$4)")
	assert.Contains(t, query, "WHERE slot_ledger.is_booked = FALSE")
	assert.Contains(t, query, "RETURNING booking_id")
	assert.Equal(t, []interface{}{"2025-03-10", "10:00 AM", true, "b1"}, args)
}

func TestSortByClock(t *testing.T) {
	labels := []string{"05:00 PM", "12:00 PM", "09:00 AM", "01:00 PM"}

	sortByClock(labels)

	assert.Equal(t, []string{"09:00 AM", "12:00 PM", "01:00 PM", "05:00 PM"}, labels)
}

func TestReserveError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantTaken bool
	}{
		{name: "slot already booked", err: sql.ErrNoRows, wantTaken: true},
		{name: "lost serializable race", err: &pq.Error{Code: "40001"}, wantTaken: true},
		{name: "concurrent insert of the same slot", err: &pq.Error{Code: "23505"}, wantTaken: true},
		{name: "other driver error", err: &pq.Error{Code: "57014"}, wantTaken: false},
		{name: "connection error", err: errors.New("connection reset"), wantTaken: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reserveError(tt.err, day, "10:00 AM")

			if tt.wantTaken {
				assert.ErrorIs(t, err, ErrSlotTaken)
				assert.ErrorIs(t, err, domain.ErrSlotConflict)
				return
			}
			assert.ErrorIs(t, err, ErrExecQuery)
			assert.NotErrorIs(t, err, ErrSlotTaken)
			assert.ErrorIs(t, err, tt.err, "driver error stays in the chain")
		})
	}
}

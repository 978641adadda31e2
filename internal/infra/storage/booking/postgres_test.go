package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServiceBooking/internal/domain"
)

func TestListQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		query, args, err := listQuery(domain.BookingsFilter{})
		require.NoError(t, err)
		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, "ORDER BY created_at DESC")
		assert.Empty(t, args)
	})

	t.Run("all filters", func(t *testing.T) {
		status := domain.StatusConfirmed
		date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		email := "Budi@Example.com"

		query, args, err := listQuery(domain.BookingsFilter{Status: &status, Date: &date, Email: &email})
		require.NoError(t, err)
		assert.Contains(t, query, "WHERE status = $1 AND booking_date = $2 AND LOWER(customer_email) = LOWER($3)")
		assert.Equal(t, []interface{}{domain.StatusConfirmed, "2025-03-10", "Budi@Example.com"}, args)
	})
}

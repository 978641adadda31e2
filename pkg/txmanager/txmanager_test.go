package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

var (
	errInternal  = errors.New("internal error")
	errExecQuery = errors.New("repository: failed to execute query")
)

func TestIsSerializationFailure(t *testing.T) {
	pqErr := &pq.Error{Code: "40001"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "driver error", err: pqErr, want: true},
		{
			name: "wrapped by repository",
			err:  fmt.Errorf("%w: Create - execute insert: %w", errExecQuery, pqErr),
			want: true,
		},
		{
			name: "wrapped by repository and use case",
			err: fmt.Errorf("%w: failed to create booking: %w", errInternal,
				fmt.Errorf("%w: Create - execute insert: %w", errExecQuery, pqErr)),
			want: true,
		},
		{name: "flattened with %v", err: fmt.Errorf("%w: %v", errExecQuery, pqErr), want: false},
		{name: "other sqlstate", err: &pq.Error{Code: "23505"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSerializationFailure(tt.err))
		})
	}
}

func TestGetExecutor(t *testing.T) {
	var db *sql.DB
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, DBExecutor(db), GetExecutor(ctx, db))

	tx := &sql.Tx{}
	txCtx := context.WithValue(ctx, txKey{}, tx)

	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, DBExecutor(tx), GetExecutor(txCtx, db))
}

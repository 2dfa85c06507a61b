package todos

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestIsConcurrencyFailure(t *testing.T) {
	require.True(t, isConcurrencyFailure(&pgconn.PgError{Code: "40001"}))
	require.True(t, isConcurrencyFailure(&pgconn.PgError{Code: "40P01"}))
	require.True(t, isConcurrencyFailure(fmt.Errorf("exec: %w", &pgconn.PgError{Code: "40001"})))

	require.False(t, isConcurrencyFailure(&pgconn.PgError{Code: "23505"}))
	require.False(t, isConcurrencyFailure(errors.New("connection refused")))
	require.False(t, isConcurrencyFailure(nil))
}

func TestIncomingWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 45, 12, 0, time.UTC)
	start, end := incomingWindow(now)

	require.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC), end)

	// Time-of-day and non-UTC zones must not shift the window
	loc := time.FixedZone("UTC+11", 11*3600)
	start2, end2 := incomingWindow(now.In(loc))
	require.True(t, start.Equal(start2))
	require.True(t, end.Equal(end2))
}

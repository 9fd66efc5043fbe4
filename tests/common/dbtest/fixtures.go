//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type PlaceFixture struct {
	Name            string
	HourlyRate      int64
	FullDayHours    int
	FullDayPrice    int64
	CooldownMinutes int
	Currency        string
}

func DefaultPlace() PlaceFixture {
	return PlaceFixture{
		Name:         "Studio A",
		HourlyRate:   1500,
		FullDayHours: 8,
		FullDayPrice: 9000,
		Currency:     "USD",
	}
}

func CreateTestPlace(t *testing.T, db DBLike, f PlaceFixture) uuid.UUID {
	t.Helper()

	placeID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO places (id, name, hourly_rate_cents, full_day_hours, full_day_price_cents, cooldown_minutes, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		placeID, f.Name, f.HourlyRate, f.FullDayHours, f.FullDayPrice, f.CooldownMinutes, f.Currency)
	require.NoError(t, err)

	return placeID
}

// BookingState reads the lifecycle columns straight from the table.
func BookingState(t *testing.T, db DBLike, bookingID uuid.UUID) (status, paymentStatus string) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT status, payment_status FROM bookings WHERE id = $1", bookingID,
	).Scan(&status, &paymentStatus)
	require.NoError(t, err)
	return status, paymentStatus
}

func CountBookingSlots(t *testing.T, db DBLike, bookingID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM booking_slots WHERE booking_id = $1", bookingID,
	).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every table except the migration ledger
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}

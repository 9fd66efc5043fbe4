//go:build unit

package booking_test

import (
	"testing"
	"time"

	"room-booking/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, date string, start, end string) booking.TimeSlot {
	t.Helper()
	s, err := booking.ParseTimeSlot(date, start, end)
	require.NoError(t, err)
	return s
}

func TestNewPricingConfig(t *testing.T) {
	t.Run("defaults full-day hours", func(t *testing.T) {
		cfg, err := booking.NewPricingConfig(1000, 0, 6000)
		require.NoError(t, err)
		assert.Equal(t, booking.DefaultFullDayHours, cfg.FullDayHours)
		assert.True(t, cfg.FullDayEnabled())
	})

	t.Run("zero discount disables full-day pricing", func(t *testing.T) {
		cfg, err := booking.NewPricingConfig(1000, 8, 0)
		require.NoError(t, err)
		assert.False(t, cfg.FullDayEnabled())
	})

	cases := []struct {
		name         string
		hourly       int64
		fullDayHours int
		discount     int64
	}{
		{name: "negative hourly rate", hourly: -1, fullDayHours: 8, discount: 0},
		{name: "negative discount", hourly: 10, fullDayHours: 8, discount: -5},
		{name: "negative full-day hours", hourly: 10, fullDayHours: -1, discount: 60},
		{name: "full day longer than a day", hourly: 10, fullDayHours: 25, discount: 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewPricingConfig(tc.hourly, tc.fullDayHours, tc.discount)
			assert.ErrorIs(t, err, booking.ErrInvalidPricingConfig)
		})
	}
}

func TestCalculateBookingPricing(t *testing.T) {
	cfg := booking.PricingConfig{HourlyRate: 10, FullDayHours: 8, FullDayDiscountPrice: 60}

	t.Run("exact full-day threshold prices as one full day", func(t *testing.T) {
		q := booking.CalculateBookingPricing(cfg, []booking.TimeSlot{mustSlot(t, "2025-03-10", "09:00", "17:00")})
		assert.Equal(t, int64(60), q.TotalPrice)
		assert.Equal(t, 8, q.TotalHours)
		require.Len(t, q.Breakdown, 1)
		assert.Equal(t, "1 full day + 0h", q.Breakdown[0].PriceType)
	})

	t.Run("discount disabled charges hourly", func(t *testing.T) {
		noDiscount := booking.PricingConfig{HourlyRate: 10, FullDayHours: 8}
		q := booking.CalculateBookingPricing(noDiscount, []booking.TimeSlot{mustSlot(t, "2025-03-10", "09:00", "17:00")})
		assert.Equal(t, int64(80), q.TotalPrice)
		assert.Equal(t, "8h", q.Breakdown[0].PriceType)
	})

	t.Run("full day plus remainder", func(t *testing.T) {
		q := booking.CalculateBookingPricing(cfg, []booking.TimeSlot{mustSlot(t, "2025-03-10", "08:00", "18:00")})
		assert.Equal(t, int64(80), q.TotalPrice)
		assert.Equal(t, "1 full day + 2h", q.Breakdown[0].PriceType)
	})

	t.Run("several full days use plural label", func(t *testing.T) {
		short := booking.PricingConfig{HourlyRate: 10, FullDayHours: 4, FullDayDiscountPrice: 30}
		q := booking.CalculateBookingPricing(short, []booking.TimeSlot{mustSlot(t, "2025-03-10", "08:00", "17:00")})
		assert.Equal(t, int64(2*30+1*10), q.TotalPrice)
		assert.Equal(t, "2 full days + 1h", q.Breakdown[0].PriceType)
	})

	t.Run("below threshold charges hourly", func(t *testing.T) {
		q := booking.CalculateBookingPricing(cfg, []booking.TimeSlot{mustSlot(t, "2025-03-10", "09:00", "12:00")})
		assert.Equal(t, int64(30), q.TotalPrice)
		assert.Equal(t, "3h", q.Breakdown[0].PriceType)
	})

	t.Run("empty input", func(t *testing.T) {
		q := booking.CalculateBookingPricing(cfg, nil)
		assert.Zero(t, q.TotalHours)
		assert.Zero(t, q.TotalPrice)
		assert.Empty(t, q.Breakdown)
	})

	t.Run("total equals sum of lines and order is kept", func(t *testing.T) {
		slots := []booking.TimeSlot{
			mustSlot(t, "2025-03-12", "13:00", "15:00"),
			mustSlot(t, "2025-03-10", "08:00", "18:00"),
			mustSlot(t, "2025-03-11", "09:00", "10:00"),
		}
		q := booking.DefaultPriceCalculator{}.Calculate(cfg, slots)

		var sum int64
		var hours int
		for _, l := range q.Breakdown {
			sum += l.Price
			hours += l.Hours
		}
		assert.Equal(t, q.TotalPrice, sum)
		assert.Equal(t, q.TotalHours, hours)

		want := []booking.PriceBreakdownLine{
			{Date: booking.NewDate(2025, time.March, 12), TimeRange: "13:00 - 15:00", Hours: 2, Price: 20, PriceType: "2h"},
			{Date: booking.NewDate(2025, time.March, 10), TimeRange: "08:00 - 18:00", Hours: 10, Price: 80, PriceType: "1 full day + 2h"},
			{Date: booking.NewDate(2025, time.March, 11), TimeRange: "09:00 - 10:00", Hours: 1, Price: 10, PriceType: "1h"},
		}
		if diff := cmp.Diff(want, q.Breakdown, cmp.Comparer(func(a, b booking.Date) bool { return a.Equal(b) })); diff != "" {
			t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
		}
	})
}

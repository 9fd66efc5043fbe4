//go:build unit

package booking_test

import (
	"testing"
	"time"

	"room-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHour(t *testing.T) {
	ok := map[string]int{
		"00:00": 0,
		"09:00": 9,
		"9:45":  9,
		"23:59": 23,
		"24:00": 24,
	}
	for in, want := range ok {
		got, err := booking.ParseHour(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "9", "09:0", "24:30", "25:00", "-1:00", "ab:cd", "09:60"} {
		_, err := booking.ParseHour(in)
		assert.ErrorIs(t, err, booking.ErrInvalidHour, in)
	}
}

func TestNewTimeSlot(t *testing.T) {
	date := booking.NewDate(2025, time.March, 10)

	t.Run("valid slot", func(t *testing.T) {
		s, err := booking.NewTimeSlot(date, 9, 11)
		require.NoError(t, err)
		assert.Equal(t, 2, s.DurationHours())
		assert.Equal(t, "09:00 - 11:00", s.TimeRange())
		assert.Equal(t, "2025-03-10 09:00 - 11:00", s.String())
	})

	cases := []struct {
		name       string
		date       booking.Date
		start, end int
	}{
		{name: "end before start", date: date, start: 11, end: 9},
		{name: "zero duration", date: date, start: 9, end: 9},
		{name: "start below range", date: date, start: -1, end: 3},
		{name: "end above range", date: date, start: 20, end: 25},
		{name: "missing date", start: 9, end: 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewTimeSlot(tc.date, tc.start, tc.end)
			assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
		})
	}
}

func TestParseTimeSlot(t *testing.T) {
	s, err := booking.ParseTimeSlot("2025-03-10", "22:00", "24:00")
	require.NoError(t, err)
	assert.Equal(t, 22, s.StartHour())
	assert.Equal(t, 24, s.EndHour())

	_, err = booking.ParseTimeSlot("10/03/2025", "09:00", "10:00")
	assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	assert.ErrorIs(t, err, booking.ErrInvalidDate)

	_, err = booking.ParseTimeSlot("2025-03-10", "9am", "10:00")
	assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	assert.ErrorIs(t, err, booking.ErrInvalidHour)

	_, err = booking.ParseTimeSlot("2025-03-10", "10:30", "10:45")
	assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
}

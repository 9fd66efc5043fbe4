//go:build unit

package cli

import (
	"bytes"
	"strings"
	"testing"

	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func lineStartingWith(t *testing.T, output, prefix string) string {
	t.Helper()
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, prefix) {
			return line
		}
	}
	t.Fatalf("no line starting with %q in:\n%s", prefix, output)
	return ""
}

func TestQuoteCmd(t *testing.T) {
	t.Run("success: exact full day uses the discount", func(t *testing.T) {
		out, err := runRoot(t, "quote",
			"--hourly-rate", "1000",
			"--full-day-price", "6000",
			"--slot", "2030-06-10,09:00,17:00",
		)
		require.NoError(t, err)

		line := lineStartingWith(t, out, "2030-06-10")
		assert.Contains(t, line, "09:00 - 17:00")
		assert.Contains(t, line, "1 full day + 0h")
		assert.Contains(t, line, "60.00")

		total := lineStartingWith(t, out, "TOTAL")
		assert.Contains(t, total, "8")
		assert.Contains(t, total, "$")
		assert.Contains(t, total, "60.00")
	})

	t.Run("success: one row per slot in input order", func(t *testing.T) {
		out, err := runRoot(t, "quote",
			"--hourly-rate", "1500",
			"--slot", "2030-06-11, 10:00, 12:00",
			"--slot", "2030-06-10,09:00,10:00",
		)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[0], "DATE"))
		assert.True(t, strings.HasPrefix(lines[1], "2030-06-11"))
		assert.Contains(t, lines[1], "2h")
		assert.True(t, strings.HasPrefix(lines[2], "2030-06-10"))
		assert.Contains(t, lines[3], "45.00")
	})

	errorCases := []struct {
		name    string
		args    []string
		errIs   error
		errText string
	}{
		{
			name:    "slot without an end time",
			args:    []string{"--hourly-rate", "1000", "--slot", "2030-06-10,09:00"},
			errText: "expected DATE,START,END",
		},
		{
			name:    "slot with too many parts",
			args:    []string{"--hourly-rate", "1000", "--slot", "2030-06-10,09:00,10:00,11:00"},
			errText: "expected DATE,START,END",
		},
		{
			name:  "end before start",
			args:  []string{"--hourly-rate", "1000", "--slot", "2030-06-10,11:00,09:00"},
			errIs: commands.ErrInvalidTimeSlot,
		},
		{
			name:  "hour past end of day",
			args:  []string{"--hourly-rate", "1000", "--slot", "2030-06-10,09:00,25:00"},
			errIs: commands.ErrInvalidTimeSlot,
		},
		{
			name:  "negative rate",
			args:  []string{"--hourly-rate=-1", "--slot", "2030-06-10,09:00,10:00"},
			errIs: booking.ErrInvalidPricingConfig,
		},
		{
			name:    "slot flag missing",
			args:    []string{"--hourly-rate", "1000"},
			errText: "slot",
		},
	}
	for _, tc := range errorCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			_, err := runRoot(t, append([]string{"quote"}, tc.args...)...)
			require.Error(t, err)
			if tc.errIs != nil {
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
			}
			if tc.errText != "" {
				assert.Contains(t, err.Error(), tc.errText)
			}
		})
	}
}

func TestParseSlotFlags(t *testing.T) {
	inputs, err := parseSlotFlags([]string{" 2030-06-10 , 09:00 ,17:00 "})
	require.NoError(t, err)
	assert.Equal(t, []commands.SlotInput{{Date: "2030-06-10", StartTime: "09:00", EndTime: "17:00"}}, inputs)

	_, err = parseSlotFlags([]string{"2030-06-10 09:00 17:00"})
	assert.ErrorContains(t, err, "expected DATE,START,END")
}

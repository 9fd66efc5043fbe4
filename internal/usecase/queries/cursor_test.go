//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor_RoundTrip(t *testing.T) {
	ts := time.Date(2030, 6, 1, 12, 30, 45, 123456789, time.UTC)
	id := uuid.New()

	gotTime, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(ts, id))

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	// nanoseconds below a microsecond are dropped
	assert.True(t, gotTime.Equal(ts.Truncate(time.Microsecond)), "got %s", gotTime)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	enc := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	testCases := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{name: "missing version", cursor: enc("1700000000-" + uuid.NewString())},
		{name: "unknown version", cursor: enc("v2:1700000000-" + uuid.NewString())},
		{name: "missing separator", cursor: enc("v1:1700000000")},
		{name: "bad timestamp", cursor: enc("v1:abc-" + uuid.NewString())},
		{name: "bad id", cursor: enc("v1:1700000000-not-a-uuid")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-3))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}

//go:build unit

package repository_test

import (
	"context"
	"testing"

	"room-booking/internal/infra"
	"room-booking/internal/infra/repository"
	"room-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success: maps the row onto the domain place", func(t *testing.T) {
		db := &fakeDBTX{row: fakeRow{values: []any{
			id.String(), "Studio A", int64(1500), int32(8), int64(9000), int32(15), "USD",
		}}}

		place, err := repository.NewPlaceRepository(db, discardLogger()).FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, place.ID())
		assert.Equal(t, "Studio A", place.Name())
		assert.Equal(t, int64(1500), place.Pricing().HourlyRate)
		assert.Equal(t, int64(9000), place.Pricing().FullDayDiscountPrice)
		assert.Equal(t, 15, place.CooldownMinutes())
	})

	t.Run("error: no row is not found", func(t *testing.T) {
		db := &fakeDBTX{row: fakeRow{err: pgx.ErrNoRows}}

		_, err := repository.NewPlaceRepository(db, discardLogger()).LockByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: corrupt row is a db failure", func(t *testing.T) {
		db := &fakeDBTX{row: fakeRow{values: []any{
			id.String(), "Studio A", int64(-1), int32(8), int64(0), int32(0), "USD",
		}}}

		_, err := repository.NewPlaceRepository(db, discardLogger()).FindByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestPlaceRepository_Create(t *testing.T) {
	ctx := context.Background()
	place, err := builder.NewBookingBuilder().BuildPlace()
	require.NoError(t, err)

	testCases := []struct {
		name       string
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "duplicate id", execErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "check constraint", execErr: &pgconn.PgError{Code: "23514"}, expectKind: infra.KindConstraintViolated},
		{name: "connection lost", execErr: assert.AnError, expectKind: infra.KindDBFailure},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := &fakeDBTX{execErr: tc.execErr}

			err := repository.NewPlaceRepository(db, discardLogger()).Create(ctx, place)

			if tc.expectKind == "" {
				require.NoError(t, err)
				require.Len(t, db.execArgs, 1)
				assert.Equal(t, place.ID(), db.execArgs[0][0])
				assert.Equal(t, "USD", db.execArgs[0][6])
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
		})
	}
}

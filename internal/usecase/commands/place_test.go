//go:build unit

package commands_test

import (
	"context"
	"testing"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPlaceCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: configured defaults fill the gaps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)

		var stored *booking.Place
		m.places.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *booking.Place) error {
			stored = p
			return nil
		})

		id, err := commands.NewPlaceCommands(m.uow, config.NewTestConfig(), discardLogger()).Create(ctx, commands.CreatePlaceRequest{
			Name:         "Rooftop",
			HourlyRate:   2000,
			FullDayPrice: 12000,
		})

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, id, stored.ID())
		assert.Equal(t, "USD", stored.Currency())
		assert.Equal(t, 8, stored.Pricing().FullDayHours)
		assert.True(t, stored.Pricing().FullDayEnabled())
	})

	testCases := []struct {
		name string
		req  commands.CreatePlaceRequest
	}{
		{name: "unknown currency", req: commands.CreatePlaceRequest{Name: "Hall", HourlyRate: 100, Currency: "QQQ"}},
		{name: "empty name", req: commands.CreatePlaceRequest{HourlyRate: 100}},
		{name: "negative cooldown", req: commands.CreatePlaceRequest{Name: "Hall", HourlyRate: 100, CooldownMinutes: -5}},
		{name: "negative rate", req: commands.CreatePlaceRequest{Name: "Hall", HourlyRate: -1}},
	}
	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newUoWMocks(ctrl)

			_, err := commands.NewPlaceCommands(m.uow, config.NewTestConfig(), discardLogger()).Create(ctx, tc.req)

			require.Error(t, err)
			assert.True(t, errs.Is(err, commands.ErrDomainValidation), "got %v", err)
		})
	}

	t.Run("error: insert failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		m.places.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repoErr(infra.KindDBFailure))

		_, err := commands.NewPlaceCommands(m.uow, config.NewTestConfig(), discardLogger()).Create(ctx, commands.CreatePlaceRequest{
			Name: "Hall", HourlyRate: 100,
		})
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}

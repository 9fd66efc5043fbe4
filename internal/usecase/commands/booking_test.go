//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/shared"
	"room-booking/tests/common/builder"
	sharedmock "room-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func repoErr(kind infra.RepositoryErrorKind) error {
	return infra.WrapRepoErr(discardLogger(), kind, "test", errors.New("driver error"))
}

type uowMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	places   *sharedmock.MockPlaceRepository
	bookings *sharedmock.MockBookingRepository
}

// newUoWMocks wires Within to run the callback against the mocked transaction.
func newUoWMocks(ctrl *gomock.Controller) *uowMocks {
	m := &uowMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		places:   sharedmock.NewMockPlaceRepository(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Places().Return(m.places).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	return m
}

func newBookingCommands(m *uowMocks) commands.BookingCommands {
	services := &booking.Services{PriceCalculator: booking.NewDefaultPriceCalculator()}
	return commands.NewBookingCommands(m.uow, services, clock.NewMockClock(testNow), discardLogger())
}

func slotInputs(b *builder.BookingBuilder) []commands.SlotInput {
	inputs := make([]commands.SlotInput, len(b.Slots))
	for i, s := range b.Slots {
		inputs[i] = commands.SlotInput{Date: s.Date, StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return inputs
}

func bookedSlot(t *testing.T, date, start, end string, cooldown int) booking.BookedSlot {
	t.Helper()
	ts, err := booking.ParseTimeSlot(date, start, end)
	require.NoError(t, err)
	return booking.BookedSlot{Slot: ts, CooldownMinutes: cooldown}
}

// =============================================================================
// Create
// =============================================================================

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		build     func(b *builder.BookingBuilder)
		setupMock func(t *testing.T, m *uowMocks, place *booking.Place)
		assertRes func(t *testing.T, res *commands.CreateBookingResult)
		wantErr   error
	}{
		{
			name: "success: pending booking priced per hour",
			setupMock: func(t *testing.T, m *uowMocks, place *booking.Place) {
				m.places.EXPECT().LockByID(gomock.Any(), place.ID()).Return(place, nil)
				m.reads.EXPECT().BookedSlots(gomock.Any(), place.ID(), []booking.Date{booking.NewDate(2030, time.June, 10)}, 0).
					Return(nil, nil)
				m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *booking.Booking) error {
					assert.Equal(t, place.ID(), b.PlaceID())
					assert.Equal(t, "team offsite", b.Note())
					assert.Equal(t, testNow, b.CreatedAt())
					return nil
				})
			},
			assertRes: func(t *testing.T, res *commands.CreateBookingResult) {
				assert.Equal(t, booking.StatusPending, res.Status)
				assert.Equal(t, booking.PaymentUnpaid, res.PaymentStatus)
				assert.Equal(t, 2, res.Quote.TotalHours)
				assert.Equal(t, int64(3000), res.Quote.TotalPrice)
				assert.Equal(t, "USD", res.Currency)
			},
		},
		{
			name: "success: full day discount applies to a long slot",
			build: func(b *builder.BookingBuilder) {
				b.Slots[0].StartTime = "08:00"
				b.Slots[0].EndTime = "18:00"
			},
			setupMock: func(t *testing.T, m *uowMocks, place *booking.Place) {
				m.places.EXPECT().LockByID(gomock.Any(), place.ID()).Return(place, nil)
				m.reads.EXPECT().BookedSlots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			assertRes: func(t *testing.T, res *commands.CreateBookingResult) {
				assert.Equal(t, 10, res.Quote.TotalHours)
				// one full day (8h) plus 2 regular hours
				assert.Equal(t, int64(9000+2*1500), res.Quote.TotalPrice)
				require.Len(t, res.Quote.Breakdown, 1)
				assert.Equal(t, "1 full day + 2h", res.Quote.Breakdown[0].PriceType)
			},
		},
		{
			name: "error: slot overlapping a booking is rejected with conflicts",
			setupMock: func(t *testing.T, m *uowMocks, place *booking.Place) {
				m.places.EXPECT().LockByID(gomock.Any(), place.ID()).Return(place, nil)
				m.reads.EXPECT().BookedSlots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]booking.BookedSlot{bookedSlot(t, "2030-06-10", "10:00", "12:00", 0)}, nil)
			},
			wantErr: commands.ErrSlotUnavailable,
		},
		{
			name: "error: cooldown of the previous booking blocks the slot",
			build: func(b *builder.BookingBuilder) {
				b.CooldownMinutes = 30
			},
			setupMock: func(t *testing.T, m *uowMocks, place *booking.Place) {
				m.places.EXPECT().LockByID(gomock.Any(), place.ID()).Return(place, nil)
				m.reads.EXPECT().BookedSlots(gomock.Any(), gomock.Any(), gomock.Any(), 30).
					Return([]booking.BookedSlot{bookedSlot(t, "2030-06-10", "07:00", "09:00", 30)}, nil)
			},
			wantErr: commands.ErrSlotUnavailable,
		},
		{
			name: "error: unknown place",
			setupMock: func(t *testing.T, m *uowMocks, place *booking.Place) {
				m.places.EXPECT().LockByID(gomock.Any(), place.ID()).Return(nil, repoErr(infra.KindNotFound))
			},
			wantErr: commands.ErrPlaceNotFound,
		},
		{
			name:      "error: reversed slot never reaches the database",
			build:     func(b *builder.BookingBuilder) { b.Slots[0].StartTime, b.Slots[0].EndTime = "11:00", "09:00" },
			setupMock: func(t *testing.T, m *uowMocks, place *booking.Place) {},
			wantErr:   commands.ErrInvalidTimeSlot,
		},
		{
			name: "error: overlapping slots within one request",
			build: func(b *builder.BookingBuilder) {
				b.Slots = append(b.Slots, b.Slots[0])
			},
			setupMock: func(t *testing.T, m *uowMocks, place *booking.Place) {
				m.places.EXPECT().LockByID(gomock.Any(), place.ID()).Return(place, nil)
				m.reads.EXPECT().BookedSlots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantErr: commands.ErrSlotUnavailable,
		},
		{
			name: "error: insert failure",
			setupMock: func(t *testing.T, m *uowMocks, place *booking.Place) {
				m.places.EXPECT().LockByID(gomock.Any(), place.ID()).Return(place, nil)
				m.reads.EXPECT().BookedSlots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repoErr(infra.KindDBFailure))
			},
			wantErr: commands.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newUoWMocks(ctrl)

			b := builder.NewBookingBuilder()
			if tc.build != nil {
				tc.build(b)
			}
			place, err := b.BuildPlace()
			require.NoError(t, err)
			tc.setupMock(t, m, place)

			res, err := newBookingCommands(m).Create(ctx, commands.CreateBookingRequest{
				PlaceID: b.PlaceID,
				Slots:   slotInputs(b),
				Note:    b.Note,
			}, b.UserID)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			tc.assertRes(t, res)
		})
	}
}

func TestBookingCommands_Create_ReportsConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newUoWMocks(ctrl)
	b := builder.NewBookingBuilder()
	place, err := b.BuildPlace()
	require.NoError(t, err)

	m.places.EXPECT().LockByID(gomock.Any(), place.ID()).Return(place, nil)
	m.reads.EXPECT().BookedSlots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]booking.BookedSlot{bookedSlot(t, "2030-06-10", "10:00", "12:00", 0)}, nil)

	_, err = newBookingCommands(m).Create(context.Background(), commands.CreateBookingRequest{
		PlaceID: b.PlaceID,
		Slots:   slotInputs(b),
	}, b.UserID)

	var unavailable *commands.UnavailableError
	require.True(t, errors.As(err, &unavailable))
	require.Len(t, unavailable.Conflicts, 1)
	assert.Equal(t, "09:00 - 11:00", unavailable.Conflicts[0].Selected.TimeRange())
	assert.Equal(t, "10:00 - 12:00", unavailable.Conflicts[0].Booked.Slot.TimeRange())
}

func TestBookingCommands_Create_ReportsSelfOverlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newUoWMocks(ctrl)
	b := builder.NewBookingBuilder()
	place, err := b.BuildPlace()
	require.NoError(t, err)

	m.places.EXPECT().LockByID(gomock.Any(), place.ID()).Return(place, nil)
	m.reads.EXPECT().BookedSlots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err = newBookingCommands(m).Create(context.Background(), commands.CreateBookingRequest{
		PlaceID: b.PlaceID,
		Slots:   append(slotInputs(b), commands.SlotInput{Date: "2030-06-10", StartTime: "10:00", EndTime: "12:00"}),
	}, b.UserID)

	assert.True(t, errs.Is(err, commands.ErrSlotUnavailable))
	var unavailable *commands.UnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.ErrorIs(t, unavailable.Reason, booking.ErrSlotsOverlapEachOther)
	assert.Equal(t, "selected slots overlap each other", unavailable.Error())
	require.Len(t, unavailable.Conflicts, 1)
	assert.Equal(t, "10:00 - 12:00", unavailable.Conflicts[0].Selected.TimeRange())
	assert.Equal(t, "09:00 - 11:00", unavailable.Conflicts[0].Booked.Slot.TimeRange())
}

// =============================================================================
// Quote / CheckAvailability
// =============================================================================

func TestBookingCommands_Quote(t *testing.T) {
	ctx := context.Background()

	t.Run("success: prices without touching bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		b := builder.NewBookingBuilder()
		place, err := b.BuildPlace()
		require.NoError(t, err)

		m.reads.EXPECT().PlaceByID(gomock.Any(), b.PlaceID).Return(place, nil)

		res, err := newBookingCommands(m).Quote(ctx, b.PlaceID, []commands.SlotInput{
			{Date: "2030-06-10", StartTime: "09:00", EndTime: "11:00"},
			{Date: "2030-06-11", StartTime: "00:00", EndTime: "24:00"},
		})

		require.NoError(t, err)
		assert.Equal(t, 26, res.Quote.TotalHours)
		// 2h regular, then 3 full days of 8h
		assert.Equal(t, int64(2*1500+3*9000), res.Quote.TotalPrice)
		assert.Equal(t, "USD", res.Currency)
	})

	t.Run("error: unknown place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		id := uuid.New()
		m.reads.EXPECT().PlaceByID(gomock.Any(), id).Return(nil, repoErr(infra.KindNotFound))

		_, err := newBookingCommands(m).Quote(ctx, id, []commands.SlotInput{{Date: "2030-06-10", StartTime: "09:00", EndTime: "10:00"}})

		assert.True(t, errs.Is(err, commands.ErrPlaceNotFound))
	})

	t.Run("error: empty selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)

		_, err := newBookingCommands(m).Quote(ctx, uuid.New(), nil)

		assert.True(t, errs.Is(err, commands.ErrInvalidTimeSlot))
		assert.ErrorIs(t, err, booking.ErrNoSlots)
	})
}

func TestBookingCommands_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.CooldownMinutes = 60 })

	testCases := []struct {
		name          string
		booked        []booking.BookedSlot
		wantAvailable bool
		wantConflicts int
	}{
		{name: "free day", wantAvailable: true},
		{name: "touching slot after cooldown", booked: []booking.BookedSlot{bookedSlot(t, "2030-06-10", "06:00", "08:00", 60)}, wantAvailable: true},
		{name: "inside cooldown", booked: []booking.BookedSlot{bookedSlot(t, "2030-06-10", "07:00", "09:00", 60)}, wantConflicts: 1},
		{name: "direct overlap", booked: []booking.BookedSlot{bookedSlot(t, "2030-06-10", "10:00", "11:00", 60)}, wantConflicts: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newUoWMocks(ctrl)
			place, err := b.BuildPlace()
			require.NoError(t, err)

			m.reads.EXPECT().PlaceByID(gomock.Any(), b.PlaceID).Return(place, nil)
			m.reads.EXPECT().BookedSlots(gomock.Any(), b.PlaceID, gomock.Any(), 60).Return(tc.booked, nil)

			res, err := newBookingCommands(m).CheckAvailability(ctx, b.PlaceID, slotInputs(b))

			require.NoError(t, err)
			assert.Equal(t, tc.wantAvailable, res.Available)
			assert.Len(t, res.Conflicts, tc.wantConflicts)
		})
	}

	t.Run("slots overlapping each other are unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		place, err := b.BuildPlace()
		require.NoError(t, err)

		m.reads.EXPECT().PlaceByID(gomock.Any(), b.PlaceID).Return(place, nil)
		m.reads.EXPECT().BookedSlots(gomock.Any(), b.PlaceID, gomock.Any(), 60).Return(nil, nil)

		// 11:00-12:00 falls inside the 60 minute cooldown of 09:00-11:00
		res, err := newBookingCommands(m).CheckAvailability(ctx, b.PlaceID, []commands.SlotInput{
			{Date: "2030-06-10", StartTime: "09:00", EndTime: "11:00"},
			{Date: "2030-06-10", StartTime: "11:00", EndTime: "12:00"},
		})

		require.NoError(t, err)
		assert.False(t, res.Available)
		require.Len(t, res.Conflicts, 1)
		assert.Equal(t, "11:00 - 12:00", res.Conflicts[0].Selected.TimeRange())
		assert.Equal(t, "09:00 - 11:00", res.Conflicts[0].Booked.Slot.TimeRange())
	})
}

// =============================================================================
// Cancel
// =============================================================================

func newDomainBooking(t *testing.T, b *builder.BookingBuilder) *booking.Booking {
	t.Helper()
	place, err := b.BuildPlace()
	require.NoError(t, err)
	slots, err := b.BuildTimeSlots()
	require.NoError(t, err)
	services := &booking.Services{PriceCalculator: booking.NewDefaultPriceCalculator()}
	bk, err := booking.NewBooking(services, place, b.UserID, slots, nil, b.Note, testNow.Add(-time.Hour))
	require.NoError(t, err)
	return bk
}

func TestBookingCommands_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("success: owner cancels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		b := builder.NewBookingBuilder()
		bk := newDomainBooking(t, b)

		m.bookings.EXPECT().LockByID(gomock.Any(), bk.ID()).Return(bk, nil)
		m.bookings.EXPECT().UpdateState(gomock.Any(), bk).DoAndReturn(func(_ context.Context, updated *booking.Booking) error {
			assert.Equal(t, booking.StatusCanceled, updated.Status())
			assert.Equal(t, testNow, updated.UpdatedAt())
			return nil
		})

		require.NoError(t, newBookingCommands(m).Cancel(ctx, bk.ID(), b.UserID))
	})

	t.Run("error: another user's booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		bk := newDomainBooking(t, builder.NewBookingBuilder())

		m.bookings.EXPECT().LockByID(gomock.Any(), bk.ID()).Return(bk, nil)

		err := newBookingCommands(m).Cancel(ctx, bk.ID(), uuid.New())
		assert.True(t, errs.Is(err, commands.ErrBookingNotOwned))
	})

	t.Run("error: already canceled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		b := builder.NewBookingBuilder()
		bk := newDomainBooking(t, b)
		require.NoError(t, bk.Cancel(testNow))

		m.bookings.EXPECT().LockByID(gomock.Any(), bk.ID()).Return(bk, nil)

		err := newBookingCommands(m).Cancel(ctx, bk.ID(), b.UserID)
		assert.True(t, errs.Is(err, commands.ErrBookingNotCanceled))
		assert.ErrorIs(t, err, booking.ErrBookingCanceled)
	})

	t.Run("error: missing booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newUoWMocks(ctrl)
		id := uuid.New()
		m.bookings.EXPECT().LockByID(gomock.Any(), id).Return(nil, repoErr(infra.KindNotFound))

		err := newBookingCommands(m).Cancel(ctx, id, uuid.New())
		assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
	})
}

func TestParseSlots(t *testing.T) {
	slots, err := commands.ParseSlots([]commands.SlotInput{
		{Date: "2030-06-10", StartTime: "09:45", EndTime: "11:00"},
		{Date: "2030-06-11", StartTime: "22:00", EndTime: "24:00"},
	})
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, 9, slots[0].StartHour())
	assert.Equal(t, 24, slots[1].EndHour())

	_, err = commands.ParseSlots([]commands.SlotInput{
		{Date: "2030-06-10", StartTime: "09:00", EndTime: "10:00"},
		{Date: "2030-06-10", StartTime: "10:00", EndTime: "10:00"},
	})
	require.Error(t, err)
	assert.True(t, errs.Is(err, commands.ErrInvalidTimeSlot))
	assert.Contains(t, err.Error(), "slot 2")
}

package commands

import (
	"context"
	"errors"
	"log/slog"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	Quote(ctx context.Context, placeID uuid.UUID, slots []SlotInput) (*QuoteResult, error)
	CheckAvailability(ctx context.Context, placeID uuid.UUID, slots []SlotInput) (*AvailabilityResult, error)
	Create(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
	clock    clock.Clock
	logger   *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, services *booking.Services, clk clock.Clock, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		services: services,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *bookingCommandsImpl) Quote(ctx context.Context, placeID uuid.UUID, inputs []SlotInput) (*QuoteResult, error) {
	slots, err := ParseSlots(inputs)
	if err != nil {
		return nil, err
	}
	place, err := uc.findPlace(ctx, uc.uow.CommandReads(), placeID)
	if err != nil {
		return nil, err
	}

	return &QuoteResult{
		PlaceID:  place.ID(),
		Currency: place.Currency(),
		Quote:    uc.services.PriceCalculator.Calculate(place.Pricing(), slots),
	}, nil
}

func (uc *bookingCommandsImpl) CheckAvailability(ctx context.Context, placeID uuid.UUID, inputs []SlotInput) (*AvailabilityResult, error) {
	slots, err := ParseSlots(inputs)
	if err != nil {
		return nil, err
	}
	reads := uc.uow.CommandReads()
	place, err := uc.findPlace(ctx, reads, placeID)
	if err != nil {
		return nil, err
	}

	booked, err := reads.BookedSlots(ctx, place.ID(), distinctDates(slots), place.CooldownMinutes())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// same rules as Create, so a slot set reported available can be booked
	internal := booking.FindInternalConflicts(slots, place.CooldownMinutes())
	return &AvailabilityResult{
		Available: booking.IsAvailable(slots, booked) && len(internal) == 0,
		Conflicts: append(booking.FindConflicts(slots, booked), internal...),
	}, nil
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error) {
	slots, err := ParseSlots(req.Slots)
	if err != nil {
		return nil, err
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		place, terr := tx.Places().LockByID(ctx, req.PlaceID)
		if terr != nil {
			if infra.IsKind(terr, infra.KindNotFound) {
				return ErrPlaceNotFound
			}
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}

		booked, terr := tx.Reads().BookedSlots(ctx, place.ID(), distinctDates(slots), place.CooldownMinutes())
		if terr != nil {
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}

		b, terr := booking.NewBooking(uc.services, place, userID, slots, booked, req.Note, uc.clock.Now())
		if terr != nil {
			switch {
			case errors.Is(terr, booking.ErrSlotsUnavailable):
				return newUnavailableError(terr, booking.FindConflicts(slots, booked))
			case errors.Is(terr, booking.ErrSlotsOverlapEachOther):
				return newUnavailableError(terr, booking.FindInternalConflicts(slots, place.CooldownMinutes()))
			}
			return errs.Mark(terr, ErrDomainValidation)
		}

		if terr = tx.Bookings().Create(ctx, b); terr != nil {
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("booking created",
		"booking_id", created.ID().String(),
		"place_id", created.PlaceID().String(),
		"total_price", created.TotalPrice(),
	)

	return &CreateBookingResult{
		BookingID:     created.ID(),
		Status:        created.Status(),
		PaymentStatus: created.PaymentStatus(),
		Currency:      created.Currency(),
		Quote: booking.PriceQuote{
			TotalHours: created.TotalHours(),
			TotalPrice: created.TotalPrice(),
			Breakdown:  created.Lines(),
		},
	}, nil
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, terr := lockOwnedBooking(ctx, tx, bookingID, userID)
		if terr != nil {
			return terr
		}
		if terr = b.Cancel(uc.clock.Now()); terr != nil {
			return errs.Mark(terr, ErrBookingNotCanceled)
		}
		if terr = tx.Bookings().UpdateState(ctx, b); terr != nil {
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *bookingCommandsImpl) findPlace(ctx context.Context, reads shared.CommandReads, placeID uuid.UUID) (*booking.Place, error) {
	place, err := reads.PlaceByID(ctx, placeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return place, nil
}

func lockOwnedBooking(ctx context.Context, tx shared.Tx, bookingID, userID uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().LockByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if b.UserID() != userID {
		return nil, ErrBookingNotOwned
	}
	return b, nil
}

// ParseSlots converts user input into validated slots; any bad slot rejects the whole input.
func ParseSlots(inputs []SlotInput) ([]booking.TimeSlot, error) {
	if len(inputs) == 0 {
		return nil, errs.Mark(booking.ErrNoSlots, ErrInvalidTimeSlot)
	}
	slots := make([]booking.TimeSlot, 0, len(inputs))
	for i, in := range inputs {
		s, err := booking.ParseTimeSlot(in.Date, in.StartTime, in.EndTime)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "slot %d", i+1), ErrInvalidTimeSlot)
		}
		slots = append(slots, s)
	}
	return slots, nil
}

func distinctDates(slots []booking.TimeSlot) []booking.Date {
	seen := make(map[string]struct{}, len(slots))
	dates := make([]booking.Date, 0, len(slots))
	for _, s := range slots {
		key := s.Date().String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		dates = append(dates, s.Date())
	}
	return dates
}

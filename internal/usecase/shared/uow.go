package shared

import (
	"context"

	"room-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Places() PlaceRepository
	Bookings() BookingRepository
	Reads() CommandReads
}

type CommandReads interface {
	PlaceByID(ctx context.Context, id uuid.UUID) (*booking.Place, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// BookedSlots returns slots of non-canceled bookings of the place on the given dates,
	// each carrying the place cooldown.
	BookedSlots(ctx context.Context, placeID uuid.UUID, dates []booking.Date, cooldownMinutes int) ([]booking.BookedSlot, error)
	PaymentStatus(ctx context.Context, bookingID uuid.UUID) (*PaymentSnapshot, error)
}

type PlaceRepository interface {
	// LockByID takes a row lock so concurrent bookings of the same place serialize.
	LockByID(ctx context.Context, id uuid.UUID) (*booking.Place, error)
	Create(ctx context.Context, place *booking.Place) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateState(ctx context.Context, b *booking.Booking) error
}

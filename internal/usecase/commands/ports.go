package commands

import (
	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPlaceNotFound           = errs.ErrPlaceNotFound
	ErrBookingNotFound         = errs.ErrBookingNotFound
	ErrBookingNotOwned         = errs.ErrBookingNotOwned
	ErrSlotUnavailable         = errs.ErrSlotUnavailable
	ErrInvalidTimeSlot         = errs.ErrInvalidTimeSlot
	ErrBookingNotPayable       = errs.ErrBookingNotPayable
	ErrBookingNotCanceled      = errs.ErrBookingNotCanceled
	ErrDuplicatePayment        = errs.ErrBookingConflict
	ErrDomainValidation        = errs.ErrDomainValidation
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
	ErrPaymentCheckFailed      = errs.ErrPaymentCheckFailed
)

// SlotInput is a slot as entered by the user: "2006-01-02" plus "HH:MM" bounds.
type SlotInput struct {
	Date      string
	StartTime string
	EndTime   string
}

type QuoteResult struct {
	PlaceID  uuid.UUID
	Currency string
	Quote    booking.PriceQuote
}

type AvailabilityResult struct {
	Available bool
	Conflicts []booking.Conflict
}

type CreateBookingRequest struct {
	PlaceID uuid.UUID
	Slots   []SlotInput
	Note    string
}

type CreateBookingResult struct {
	BookingID     uuid.UUID
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	Currency      string
	Quote         booking.PriceQuote
}

// UnavailableError carries the slots that collided. It is always marked with ErrSlotUnavailable.
// Reason tells a calendar clash from slots of the same request colliding with each other.
type UnavailableError struct {
	Reason    error
	Conflicts []booking.Conflict
}

func (e *UnavailableError) Error() string {
	if e.Reason != nil {
		return e.Reason.Error()
	}
	return "selected slots are not available"
}

func (e *UnavailableError) Unwrap() error {
	return e.Reason
}

func newUnavailableError(reason error, conflicts []booking.Conflict) error {
	return errs.Mark(&UnavailableError{Reason: reason, Conflicts: conflicts}, ErrSlotUnavailable)
}

package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxNoteLength is counted in characters, not bytes.
const MaxNoteLength = 500

var (
	ErrNoSlots               = errors.New("at least one slot is required")
	ErrNoteTooLong           = fmt.Errorf("note is too long (max %d characters)", MaxNoteLength)
	ErrSlotsUnavailable      = errors.New("selected slots overlap an existing booking")
	ErrSlotsOverlapEachOther = errors.New("selected slots overlap each other")
	ErrBookingCanceled       = errors.New("booking is already canceled")
	ErrAlreadyPaid           = errors.New("booking is already paid")
	ErrPaymentMethodNeeded   = errors.New("payment method is required")
)

type Services struct {
	PriceCalculator PriceCalculator
}

type Booking struct {
	id            uuid.UUID
	placeID       uuid.UUID
	userID        uuid.UUID
	lines         []PriceBreakdownLine
	slots         []TimeSlot
	totalHours    int
	totalPrice    int64
	currency      string
	status        Status
	paymentStatus PaymentStatus
	paymentMethod string
	paymentID     string
	paidAt        *time.Time
	note          string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking validates the selection against the place calendar and prices it.
// The new booking stays pending until its payment is confirmed.
func NewBooking(
	services *Services,
	place *Place,
	userID uuid.UUID,
	slots []TimeSlot,
	booked []BookedSlot,
	note string,
	now time.Time,
) (*Booking, error) {
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}
	note = strings.TrimSpace(note)
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return nil, ErrNoteTooLong
	}
	if !IsAvailable(slots, booked) {
		return nil, ErrSlotsUnavailable
	}
	if len(FindInternalConflicts(slots, place.CooldownMinutes())) > 0 {
		return nil, ErrSlotsOverlapEachOther
	}

	quote := services.PriceCalculator.Calculate(place.Pricing(), slots)

	return &Booking{
		id:            uuid.New(),
		placeID:       place.ID(),
		userID:        userID,
		lines:         quote.Breakdown,
		slots:         append([]TimeSlot(nil), slots...),
		totalHours:    quote.TotalHours,
		totalPrice:    quote.TotalPrice,
		currency:      place.Currency(),
		status:        StatusPending,
		paymentStatus: PaymentUnpaid,
		note:          note,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(
	id, placeID, userID uuid.UUID,
	slots []TimeSlot,
	lines []PriceBreakdownLine,
	totalHours int,
	totalPrice int64,
	currency string,
	status Status,
	paymentStatus PaymentStatus,
	paymentMethod, paymentID string,
	paidAt *time.Time,
	note string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		placeID:       placeID,
		userID:        userID,
		slots:         slots,
		lines:         lines,
		totalHours:    totalHours,
		totalPrice:    totalPrice,
		currency:      currency,
		status:        status,
		paymentStatus: paymentStatus,
		paymentMethod: paymentMethod,
		paymentID:     paymentID,
		paidAt:        paidAt,
		note:          note,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// MarkPaid records the payment confirmation and confirms the booking.
func (b *Booking) MarkPaid(method, paymentID string, at time.Time) error {
	if b.status == StatusCanceled {
		return ErrBookingCanceled
	}
	if b.paymentStatus == PaymentPaid {
		return ErrAlreadyPaid
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return ErrPaymentMethodNeeded
	}
	b.paymentStatus = PaymentPaid
	b.paymentMethod = method
	b.paymentID = strings.TrimSpace(paymentID)
	b.paidAt = &at
	b.status = StatusConfirmed
	b.updatedAt = at
	return nil
}

func (b *Booking) Cancel(at time.Time) error {
	if b.status == StatusCanceled {
		return ErrBookingCanceled
	}
	b.status = StatusCanceled
	b.updatedAt = at
	return nil
}

func (b *Booking) IsPaid() bool {
	return b.paymentStatus == PaymentPaid
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) PlaceID() uuid.UUID           { return b.placeID }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) Slots() []TimeSlot            { return b.slots }
func (b *Booking) Lines() []PriceBreakdownLine  { return b.lines }
func (b *Booking) TotalHours() int              { return b.totalHours }
func (b *Booking) TotalPrice() int64            { return b.totalPrice }
func (b *Booking) Currency() string             { return b.currency }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) PaymentMethod() string        { return b.paymentMethod }
func (b *Booking) PaymentID() string            { return b.paymentID }
func (b *Booking) PaidAt() *time.Time           { return b.paidAt }
func (b *Booking) Note() string                 { return b.note }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

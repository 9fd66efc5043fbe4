package payment

import (
	"context"

	"github.com/google/uuid"
)

// CheckResult is what a single status lookup reports for a booking.
// Success=false means the lookup itself failed and says nothing about payment.
type CheckResult struct {
	Success       bool
	IsPaid        bool
	BookingStatus string
	PaymentID     string
	Method        string
	Message       string
}

// StatusChecker queries the payment state of a booking. Implementations must be
// safe to call repeatedly for the same booking.
type StatusChecker interface {
	Check(ctx context.Context, bookingID uuid.UUID) (CheckResult, error)
}

type State string

const (
	StateIdle          State = "idle"
	StatePolling       State = "polling"
	StatePaid          State = "paid"
	StateUnpaidTimeout State = "unpaid_timeout"
	StateError         State = "error"
	StateCanceled      State = "canceled"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsTerminal() bool {
	switch s {
	case StatePaid, StateUnpaidTimeout, StateError, StateCanceled:
		return true
	default:
		return false
	}
}

type Outcome struct {
	BookingID     uuid.UUID
	State         State
	IsPaid        bool
	Attempts      int
	BookingStatus string
	PaymentID     string
	Method        string
	Message       string
}

type Progress struct {
	AttemptsMade        int
	MaxAttempts         int
	ConsecutiveNotFound int
	LastMessage         string
}

type ProgressFunc func(Progress)

package response

import (
	"room-booking/internal/domain/payment"

	"github.com/google/uuid"
)

type PaymentStatusResponse struct {
	IsPaid        bool   `json:"is_paid"`
	BookingStatus string `json:"booking_status"`
	PaymentID     string `json:"payment_id,omitempty"`
	Method        string `json:"method,omitempty"`
	Message       string `json:"message"`
}

func FromCheckResult(r *payment.CheckResult) *PaymentStatusResponse {
	return &PaymentStatusResponse{
		IsPaid:        r.IsPaid,
		BookingStatus: r.BookingStatus,
		PaymentID:     r.PaymentID,
		Method:        r.Method,
		Message:       r.Message,
	}
}

type PaymentOutcomeResponse struct {
	BookingID     uuid.UUID `json:"booking_id"`
	State         string    `json:"state"`
	IsPaid        bool      `json:"is_paid"`
	Attempts      int       `json:"attempts"`
	BookingStatus string    `json:"booking_status,omitempty"`
	PaymentID     string    `json:"payment_id,omitempty"`
	Method        string    `json:"method,omitempty"`
	Message       string    `json:"message"`
}

func FromOutcome(o *payment.Outcome) *PaymentOutcomeResponse {
	return &PaymentOutcomeResponse{
		BookingID:     o.BookingID,
		State:         o.State.String(),
		IsPaid:        o.IsPaid,
		Attempts:      o.Attempts,
		BookingStatus: o.BookingStatus,
		PaymentID:     o.PaymentID,
		Method:        o.Method,
		Message:       o.Message,
	}
}

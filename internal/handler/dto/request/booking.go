package request

import (
	"strings"

	"room-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotRequest struct {
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"required,hhmm"`
	EndTime   string `json:"end_time" binding:"required,hhmm"`
}

// SlotsRequest is the body shared by the quote and availability endpoints.
type SlotsRequest struct {
	Slots []SlotRequest `json:"slots" binding:"required,min=1,max=62,dive"`
}

func (r SlotsRequest) ToInputs() ([]commands.SlotInput, error) {
	return toSlotInputs(r.Slots)
}

type CreateBookingRequest struct {
	PlaceID uuid.UUID     `json:"place_id" binding:"required"`
	Slots   []SlotRequest `json:"slots" binding:"required,min=1,max=62,dive"`
	Note    *string       `json:"note,omitempty" binding:"omitempty,booking_note"`
}

func (r CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	inputs, err := toSlotInputs(r.Slots)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	cmd := commands.CreateBookingRequest{
		PlaceID: r.PlaceID,
		Slots:   inputs,
	}
	if r.Note != nil {
		cmd.Note = strings.TrimSpace(*r.Note)
	}
	return cmd, nil
}

type RecordPaymentRequest struct {
	Method    string `json:"method" binding:"required,max=32"`
	PaymentID string `json:"payment_id" binding:"required,max=128"`
}

func (r RecordPaymentRequest) ToCommand() commands.RecordPaymentRequest {
	return commands.RecordPaymentRequest{
		Method:    strings.ToLower(strings.TrimSpace(r.Method)),
		PaymentID: strings.TrimSpace(r.PaymentID),
	}
}

type WaitForPaymentQuery struct {
	Immediate   bool `form:"immediate"`
	MaxAttempts int  `form:"maxAttempts" binding:"omitempty,min=1,max=15"`
}

func (q WaitForPaymentQuery) ToOptions() commands.WaitOptions {
	return commands.WaitOptions{Immediate: q.Immediate, MaxAttempts: q.MaxAttempts}
}

type ListBookingsQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1"`
	After string `form:"after"`
}

func toSlotInputs(slots []SlotRequest) ([]commands.SlotInput, error) {
	inputs := make([]commands.SlotInput, 0, len(slots))
	if err := copier.Copy(&inputs, &slots); err != nil {
		return nil, err
	}
	return inputs, nil
}

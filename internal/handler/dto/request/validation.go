package request

import (
	"strings"
	"unicode/utf8"

	"room-booking/internal/domain/booking"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding rules to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("hhmm", validateHHMM); err != nil {
		return err
	}
	return v.RegisterValidation("booking_note", validateBookingNote)
}

// hhmm accepts "HH:MM" times, including "24:00" as end of day.
func validateHHMM(fl validator.FieldLevel) bool {
	_, err := booking.ParseHour(fl.Field().String())
	return err == nil
}

func validateBookingNote(fl validator.FieldLevel) bool {
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) <= booking.MaxNoteLength
}

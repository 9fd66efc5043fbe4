package api

import (
	"errors"
	"net/http"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/payment"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ConflictDetail struct {
	Conflicts []resdto.ConflictResponse `json:"conflicts"`
}

// abortWithUsecaseError maps usecase sentinels onto HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error, fallback string) {
	var unavailable *commands.UnavailableError
	switch {
	case errors.As(err, &unavailable):
		msg := "Selected slots are not available"
		if errors.Is(unavailable.Reason, booking.ErrSlotsOverlapEachOther) {
			msg = "Selected slots overlap each other"
		}
		httperr.AbortWithError(c, http.StatusConflict, err, msg,
			ConflictDetail{Conflicts: resdto.FromConflicts(unavailable.Conflicts)})
	case errs.Is(err, commands.ErrInvalidTimeSlot):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time slot", gin.H{"reason": err.Error()})
	case errs.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
	case errs.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking rejected", nil)
	case errs.Is(err, commands.ErrPlaceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Place not found", nil)
	case errs.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, commands.ErrBookingNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Booking belongs to another user", nil)
	case errs.Is(err, commands.ErrBookingNotPayable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking cannot accept payment", nil)
	case errs.Is(err, commands.ErrBookingNotCanceled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking cannot be canceled", nil)
	case errs.Is(err, commands.ErrDuplicatePayment):
		httperr.AbortWithError(c, http.StatusConflict, err, "Payment already recorded", nil)
	case errs.Is(err, commands.ErrPaymentCheckFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment status unavailable", nil)
	case errs.Is(err, payment.ErrPollCanceled):
		httperr.AbortWithError(c, http.StatusGatewayTimeout, err, "Payment wait ended before confirmation", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}

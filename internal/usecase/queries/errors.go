package queries

import "room-booking/internal/pkg/errs"

var (
	ErrPlaceNotFound   = errs.ErrPlaceNotFound
	ErrBookingNotFound = errs.ErrBookingNotFound
	ErrBookingAccess   = errs.ErrBookingNotOwned
	ErrInvalidCursor   = errs.New("invalid cursor")
)

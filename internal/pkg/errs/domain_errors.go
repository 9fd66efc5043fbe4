package errs

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Place errors
	ErrPlaceNotFound = New("place not found")

	// Booking errors
	ErrBookingNotFound    = New("booking not found")
	ErrBookingNotOwned    = New("booking not owned by user")
	ErrSlotUnavailable    = New("selected slots are not available")
	ErrInvalidTimeSlot    = New("invalid time slot")
	ErrBookingConflict    = New("booking conflict")
	ErrBookingNotPayable  = New("booking cannot accept payment")
	ErrBookingNotCanceled = New("booking cannot be canceled")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrPaymentCheckFailed      = New("payment status check failed")
)

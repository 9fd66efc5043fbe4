package shared

import (
	"time"

	"github.com/google/uuid"
)

// PaymentSnapshot is the minimal payment view used by status checks.
type PaymentSnapshot struct {
	BookingID     uuid.UUID
	UserID        uuid.UUID
	Status        string
	PaymentStatus string
	PaymentMethod string
	PaymentID     string
	PaidAt        *time.Time
}

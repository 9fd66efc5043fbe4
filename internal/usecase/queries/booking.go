package queries

import (
	"context"
	"time"

	"room-booking/internal/infra"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingSlotView struct {
	Date      time.Time `json:"date"`
	StartHour int       `json:"start_hour"`
	EndHour   int       `json:"end_hour"`
	Hours     int       `json:"hours"`
	Price     int64     `json:"price"`
	PriceType string    `json:"price_type"`
}

type BookingView struct {
	ID            uuid.UUID         `json:"id"`
	PlaceID       uuid.UUID         `json:"place_id"`
	PlaceName     string            `json:"place_name"`
	UserID        uuid.UUID         `json:"user_id"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	PaymentID     string            `json:"payment_id,omitempty"`
	PaidAt        *time.Time        `json:"paid_at,omitempty"`
	TotalHours    int               `json:"total_hours"`
	TotalPrice    int64             `json:"total_price"`
	Currency      string            `json:"currency"`
	Note          string            `json:"note,omitempty"`
	Slots         []BookingSlotView `json:"slots"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	PlaceID       uuid.UUID `json:"place_id"`
	PlaceName     string    `json:"place_name"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TotalHours    int       `json:"total_hours"`
	TotalPrice    int64     `json:"total_price"`
	Currency      string    `json:"currency"`
	FirstDate     time.Time `json:"first_date"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindAwaitingPayment(ctx context.Context, createdBefore time.Time, limit int32) ([]uuid.UUID, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
	// AwaitingPayment lists pending unpaid bookings created before the given time, oldest first.
	AwaitingPayment(ctx context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*BookingView, error) {
	b, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.UserID != actorID {
		return nil, ErrBookingAccess
	}
	return b, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *bookingQueriesImpl) AwaitingPayment(ctx context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error) {
	return q.repo.FindAwaitingPayment(ctx, createdBefore, int32(ValidateLimit(limit)))
}

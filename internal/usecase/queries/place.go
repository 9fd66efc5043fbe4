package queries

import (
	"context"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"

	"github.com/google/uuid"
)

type PlaceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	HourlyRate      int64     `json:"hourly_rate"`
	FullDayHours    int       `json:"full_day_hours"`
	FullDayPrice    int64     `json:"full_day_price"`
	CooldownMinutes int       `json:"cooldown_minutes"`
	Currency        string    `json:"currency"`
	CreatedAt       time.Time `json:"created_at"`
}

type BookedSlotView struct {
	BookingID       uuid.UUID `json:"booking_id"`
	Date            time.Time `json:"date"`
	StartHour       int       `json:"start_hour"`
	EndHour         int       `json:"end_hour"`
	CooldownMinutes int       `json:"cooldown_minutes"`
}

type PlaceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PlaceView, error)
	FindBookedSlots(ctx context.Context, placeID uuid.UUID, date time.Time) ([]*BookedSlotView, error)
}

type PlaceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PlaceView, error)
	BookedSlots(ctx context.Context, placeID uuid.UUID, date booking.Date) ([]*BookedSlotView, error)
}

type placeQueriesImpl struct {
	repo PlaceReadStore
}

func NewPlaceQueries(repo PlaceReadStore) PlaceQueries {
	return &placeQueriesImpl{repo: repo}
}

func (q *placeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PlaceView, error) {
	p, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}
	return p, nil
}

// BookedSlots lists the calendar of one place for one day, canceled bookings excluded.
func (q *placeQueriesImpl) BookedSlots(ctx context.Context, placeID uuid.UUID, date booking.Date) ([]*BookedSlotView, error) {
	if _, err := q.GetByID(ctx, placeID); err != nil {
		return nil, err
	}
	slots, err := q.repo.FindBookedSlots(ctx, placeID, date.Time())
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []*BookedSlotView{}
	}
	return slots, nil
}

//go:build unit || e2e

package builder

import (
	"strconv"
	"time"

	"room-booking/internal/domain/booking"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	PlaceID         uuid.UUID
	PlaceName       string
	UserID          uuid.UUID
	HourlyRate      int64
	FullDayHours    int
	FullDayPrice    int64
	CooldownMinutes int
	Currency        string
	Slots           []reqdto.SlotRequest
	Note            string
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           uuid.New(),
		PlaceID:      uuid.New(),
		PlaceName:    "Studio A",
		UserID:       uuid.New(),
		HourlyRate:   1500,
		FullDayHours: 8,
		FullDayPrice: 9000,
		Currency:     "USD",
		Slots: []reqdto.SlotRequest{
			{Date: "2030-06-10", StartTime: "09:00", EndTime: "11:00"},
		},
		Note:      "team offsite",
		CreatedAt: time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildPlace() (*booking.Place, error) {
	pricing, err := booking.NewPricingConfig(b.HourlyRate, b.FullDayHours, b.FullDayPrice)
	if err != nil {
		return nil, err
	}
	return booking.NewPlace(b.PlaceID, b.PlaceName, pricing, b.CooldownMinutes, b.Currency)
}

func (b *BookingBuilder) BuildTimeSlots() ([]booking.TimeSlot, error) {
	slots := make([]booking.TimeSlot, 0, len(b.Slots))
	for _, s := range b.Slots {
		ts, err := booking.ParseTimeSlot(s.Date, s.StartTime, s.EndTime)
		if err != nil {
			return nil, err
		}
		slots = append(slots, ts)
	}
	return slots, nil
}

func (b *BookingBuilder) BuildSlotsRequestDTO() reqdto.SlotsRequest {
	return reqdto.SlotsRequest{Slots: b.Slots}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	note := b.Note
	return reqdto.CreateBookingRequest{
		PlaceID: b.PlaceID,
		Slots:   b.Slots,
		Note:    &note,
	}
}

func (b *BookingBuilder) BuildPlaceView() *queries.PlaceView {
	return &queries.PlaceView{
		ID:              b.PlaceID,
		Name:            b.PlaceName,
		HourlyRate:      b.HourlyRate,
		FullDayHours:    b.FullDayHours,
		FullDayPrice:    b.FullDayPrice,
		CooldownMinutes: b.CooldownMinutes,
		Currency:        b.Currency,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	view := &queries.BookingView{
		ID:            b.ID,
		PlaceID:       b.PlaceID,
		PlaceName:     b.PlaceName,
		UserID:        b.UserID,
		Status:        booking.StatusPending.String(),
		PaymentStatus: booking.PaymentUnpaid.String(),
		Currency:      b.Currency,
		Note:          b.Note,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
	for _, s := range b.Slots {
		date, _ := time.Parse(booking.DateLayout, s.Date)
		start, _ := booking.ParseHour(s.StartTime)
		end, _ := booking.ParseHour(s.EndTime)
		hours := end - start
		view.Slots = append(view.Slots, queries.BookingSlotView{
			Date:      date,
			StartHour: start,
			EndHour:   end,
			Hours:     hours,
			Price:     int64(hours) * b.HourlyRate,
			PriceType: strconv.Itoa(hours) + "h",
		})
		view.TotalHours += hours
		view.TotalPrice += int64(hours) * b.HourlyRate
	}
	return view
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	v := b.BuildView()
	return &queries.BookingListItem{
		ID:            v.ID,
		PlaceID:       v.PlaceID,
		PlaceName:     v.PlaceName,
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
		TotalHours:    v.TotalHours,
		TotalPrice:    v.TotalPrice,
		Currency:      v.Currency,
		FirstDate:     v.Slots[0].Date,
		CreatedAt:     v.CreatedAt,
	}
}

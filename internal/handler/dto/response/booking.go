package response

import (
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingSlotResponse struct {
	Date      string        `json:"date"`
	StartTime string        `json:"start_time"`
	EndTime   string        `json:"end_time"`
	Hours     int           `json:"hours"`
	Price     MoneyResponse `json:"price"`
	PriceType string        `json:"price_type"`
}

type BookingResponse struct {
	ID            uuid.UUID             `json:"id"`
	PlaceID       uuid.UUID             `json:"place_id"`
	PlaceName     string                `json:"place_name"`
	Status        string                `json:"status"`
	PaymentStatus string                `json:"payment_status"`
	PaymentMethod string                `json:"payment_method,omitempty"`
	PaymentID     string                `json:"payment_id,omitempty"`
	PaidAt        *time.Time            `json:"paid_at,omitempty"`
	TotalHours    int                   `json:"total_hours"`
	TotalPrice    MoneyResponse         `json:"total_price"`
	Note          string                `json:"note,omitempty"`
	Slots         []BookingSlotResponse `json:"slots"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	slots := make([]BookingSlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = BookingSlotResponse{
			Date:      s.Date.Format(booking.DateLayout),
			StartTime: booking.FormatHour(s.StartHour),
			EndTime:   booking.FormatHour(s.EndHour),
			Hours:     s.Hours,
			Price:     NewMoney(s.Price, v.Currency),
			PriceType: s.PriceType,
		}
	}
	return &BookingResponse{
		ID:            v.ID,
		PlaceID:       v.PlaceID,
		PlaceName:     v.PlaceName,
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
		PaymentMethod: v.PaymentMethod,
		PaymentID:     v.PaymentID,
		PaidAt:        v.PaidAt,
		TotalHours:    v.TotalHours,
		TotalPrice:    NewMoney(v.TotalPrice, v.Currency),
		Note:          v.Note,
		Slots:         slots,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

type BookingListItemResponse struct {
	ID            uuid.UUID     `json:"id"`
	PlaceID       uuid.UUID     `json:"place_id"`
	PlaceName     string        `json:"place_name"`
	Status        string        `json:"status"`
	PaymentStatus string        `json:"payment_status"`
	TotalHours    int           `json:"total_hours"`
	TotalPrice    MoneyResponse `json:"total_price"`
	FirstDate     string        `json:"first_date"`
	CreatedAt     time.Time     `json:"created_at"`
}

type BookingListResponse struct {
	Items      []BookingListItemResponse `json:"items"`
	NextCursor string                    `json:"next_cursor,omitempty"`
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{Items: make([]BookingListItemResponse, len(items))}
	for i, it := range items {
		res.Items[i] = BookingListItemResponse{
			ID:            it.ID,
			PlaceID:       it.PlaceID,
			PlaceName:     it.PlaceName,
			Status:        it.Status,
			PaymentStatus: it.PaymentStatus,
			TotalHours:    it.TotalHours,
			TotalPrice:    NewMoney(it.TotalPrice, it.Currency),
			FirstDate:     it.FirstDate.Format(booking.DateLayout),
			CreatedAt:     it.CreatedAt,
		}
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type CreateBookingResponse struct {
	ID            uuid.UUID           `json:"id"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	TotalHours    int                 `json:"total_hours"`
	TotalPrice    MoneyResponse       `json:"total_price"`
	Breakdown     []PriceLineResponse `json:"breakdown"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:            r.BookingID,
		Status:        r.Status.String(),
		PaymentStatus: r.PaymentStatus.String(),
		TotalHours:    r.Quote.TotalHours,
		TotalPrice:    NewMoney(r.Quote.TotalPrice, r.Currency),
		Breakdown:     fromLines(r.Quote.Breakdown, r.Currency),
	}
}

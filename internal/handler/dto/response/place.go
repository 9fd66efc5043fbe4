package response

import (
	"fmt"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PlaceResponse struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	HourlyRate      MoneyResponse `json:"hourly_rate"`
	FullDayHours    int           `json:"full_day_hours"`
	FullDayPrice    MoneyResponse `json:"full_day_price"`
	CooldownMinutes int           `json:"cooldown_minutes"`
	CreatedAt       time.Time     `json:"created_at"`
}

func FromPlaceView(v *queries.PlaceView) *PlaceResponse {
	return &PlaceResponse{
		ID:              v.ID,
		Name:            v.Name,
		HourlyRate:      NewMoney(v.HourlyRate, v.Currency),
		FullDayHours:    v.FullDayHours,
		FullDayPrice:    NewMoney(v.FullDayPrice, v.Currency),
		CooldownMinutes: v.CooldownMinutes,
		CreatedAt:       v.CreatedAt,
	}
}

type BookedSlotResponse struct {
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	CooldownMinutes int    `json:"cooldown_minutes"`
}

func FromBookedSlots(items []*queries.BookedSlotView) []BookedSlotResponse {
	res := make([]BookedSlotResponse, len(items))
	for i, it := range items {
		res[i] = BookedSlotResponse{
			Date:            it.Date.Format(booking.DateLayout),
			StartTime:       booking.FormatHour(it.StartHour),
			EndTime:         booking.FormatHour(it.EndHour),
			CooldownMinutes: it.CooldownMinutes,
		}
	}
	return res
}

type PriceLineResponse struct {
	Date      string        `json:"date"`
	TimeRange string        `json:"time_range"`
	Hours     int           `json:"hours"`
	Price     MoneyResponse `json:"price"`
	PriceType string        `json:"price_type"`
}

type QuoteResponse struct {
	PlaceID    uuid.UUID           `json:"place_id"`
	TotalHours int                 `json:"total_hours"`
	TotalPrice MoneyResponse       `json:"total_price"`
	Breakdown  []PriceLineResponse `json:"breakdown"`
}

func FromQuote(placeID uuid.UUID, currency string, q booking.PriceQuote) *QuoteResponse {
	return &QuoteResponse{
		PlaceID:    placeID,
		TotalHours: q.TotalHours,
		TotalPrice: NewMoney(q.TotalPrice, currency),
		Breakdown:  fromLines(q.Breakdown, currency),
	}
}

func FromQuoteResult(r *commands.QuoteResult) *QuoteResponse {
	return FromQuote(r.PlaceID, r.Currency, r.Quote)
}

func fromLines(lines []booking.PriceBreakdownLine, currency string) []PriceLineResponse {
	res := make([]PriceLineResponse, len(lines))
	for i, l := range lines {
		res[i] = PriceLineResponse{
			Date:      l.Date.String(),
			TimeRange: l.TimeRange,
			Hours:     l.Hours,
			Price:     NewMoney(l.Price, currency),
			PriceType: l.PriceType,
		}
	}
	return res
}

type ConflictResponse struct {
	Date          string `json:"date"`
	Selected      string `json:"selected"`
	Booked        string `json:"booked"`
	CooldownUntil string `json:"cooldown_until"`
}

type AvailabilityResponse struct {
	Available bool               `json:"available"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

func FromAvailability(r *commands.AvailabilityResult) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: r.Available,
		Conflicts: FromConflicts(r.Conflicts),
	}
}

func FromConflicts(conflicts []booking.Conflict) []ConflictResponse {
	res := make([]ConflictResponse, len(conflicts))
	for i, c := range conflicts {
		end := c.Booked.Slot.EndHour()*60 + max(c.Booked.CooldownMinutes, 0)
		res[i] = ConflictResponse{
			Date:          c.Selected.Date().String(),
			Selected:      c.Selected.TimeRange(),
			Booked:        c.Booked.Slot.TimeRange(),
			CooldownUntil: formatMinute(end),
		}
	}
	return res
}

// formatMinute caps at 24:00; a cooldown never carries over to the next date.
func formatMinute(m int) string {
	m = min(m, 24*60)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

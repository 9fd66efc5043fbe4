package booking

import (
	"errors"
	"fmt"
)

const DefaultFullDayHours = 8

var ErrInvalidPricingConfig = errors.New("invalid pricing config")

// PricingConfig holds place-level rates. Amounts are minor currency units (cents).
// A zero FullDayDiscountPrice disables full-day pricing.
type PricingConfig struct {
	HourlyRate           int64
	FullDayHours         int
	FullDayDiscountPrice int64
}

func NewPricingConfig(hourlyRate int64, fullDayHours int, fullDayDiscountPrice int64) (PricingConfig, error) {
	if hourlyRate < 0 {
		return PricingConfig{}, fmt.Errorf("%w: hourly rate cannot be negative", ErrInvalidPricingConfig)
	}
	if fullDayDiscountPrice < 0 {
		return PricingConfig{}, fmt.Errorf("%w: full-day price cannot be negative", ErrInvalidPricingConfig)
	}
	if fullDayHours < 0 || fullDayHours > HoursPerDay {
		return PricingConfig{}, fmt.Errorf("%w: full-day hours must be within 0-%d", ErrInvalidPricingConfig, HoursPerDay)
	}
	if fullDayHours == 0 {
		fullDayHours = DefaultFullDayHours
	}
	return PricingConfig{
		HourlyRate:           hourlyRate,
		FullDayHours:         fullDayHours,
		FullDayDiscountPrice: fullDayDiscountPrice,
	}, nil
}

func (c PricingConfig) FullDayEnabled() bool {
	return c.FullDayDiscountPrice > 0 && c.FullDayHours > 0
}

type PriceBreakdownLine struct {
	Date      Date
	TimeRange string
	Hours     int
	Price     int64
	PriceType string
}

type PriceQuote struct {
	TotalHours int
	TotalPrice int64
	Breakdown  []PriceBreakdownLine
}

type PriceCalculator interface {
	Calculate(cfg PricingConfig, slots []TimeSlot) PriceQuote
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (DefaultPriceCalculator) Calculate(cfg PricingConfig, slots []TimeSlot) PriceQuote {
	return CalculateBookingPricing(cfg, slots)
}

// CalculateBookingPricing prices each slot independently and keeps input order in the breakdown.
func CalculateBookingPricing(cfg PricingConfig, slots []TimeSlot) PriceQuote {
	quote := PriceQuote{Breakdown: make([]PriceBreakdownLine, 0, len(slots))}
	for _, slot := range slots {
		line := priceSlot(cfg, slot)
		quote.TotalHours += line.Hours
		quote.TotalPrice += line.Price
		quote.Breakdown = append(quote.Breakdown, line)
	}
	return quote
}

func priceSlot(cfg PricingConfig, slot TimeSlot) PriceBreakdownLine {
	hours := slot.DurationHours()
	line := PriceBreakdownLine{
		Date:      slot.Date(),
		TimeRange: slot.TimeRange(),
		Hours:     hours,
		Price:     int64(hours) * cfg.HourlyRate,
		PriceType: fmt.Sprintf("%dh", hours),
	}

	if !cfg.FullDayEnabled() || hours < cfg.FullDayHours {
		return line
	}

	fullDays := hours / cfg.FullDayHours
	remaining := hours % cfg.FullDayHours
	line.Price = int64(fullDays)*cfg.FullDayDiscountPrice + int64(remaining)*cfg.HourlyRate
	if fullDays > 0 {
		line.PriceType = fullDayLabel(fullDays, remaining)
	}
	return line
}

func fullDayLabel(fullDays, remaining int) string {
	unit := "full days"
	if fullDays == 1 {
		unit = "full day"
	}
	return fmt.Sprintf("%d %s + %dh", fullDays, unit, remaining)
}

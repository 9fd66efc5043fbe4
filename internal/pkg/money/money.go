package money

import (
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const fallbackCurrency = "USD"

// Unit resolves an ISO 4217 code, falling back to USD for unknown codes.
func Unit(code string) currency.Unit {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return currency.MustParseISO(fallbackCurrency)
	}
	return unit
}

// IsValidCode reports whether code is a known ISO 4217 currency.
func IsValidCode(code string) bool {
	_, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	return err == nil
}

// Scale returns the number of minor-unit digits for the currency (2 for USD, 0 for JPY).
func Scale(code string) int {
	scale, _ := currency.Standard.Rounding(Unit(code))
	return scale
}

// ToMajor converts an amount held in minor units into major units.
func ToMajor(minor int64, code string) float64 {
	return float64(minor) / math.Pow10(Scale(code))
}

// Format renders a minor-unit amount with the currency symbol for display.
func Format(minor int64, code string, tag language.Tag) string {
	unit := Unit(code)
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(ToMajor(minor, code))))
}

package response

import (
	"room-booking/internal/pkg/money"

	"golang.org/x/text/language"
)

var displayLanguage = language.English

type MoneyResponse struct {
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

func NewMoney(minor int64, currency string) MoneyResponse {
	return MoneyResponse{
		Amount:    minor,
		Currency:  currency,
		Formatted: money.Format(minor, currency, displayLanguage),
	}
}

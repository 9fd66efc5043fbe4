package booking

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const (
	MaxPlaceNameLength = 255
	MaxCooldownMinutes = HoursPerDay * minutesInHour
)

var (
	ErrEmptyPlaceName     = errors.New("place name cannot be empty")
	ErrPlaceNameTooLong   = errors.New("place name is too long (max 255 characters)")
	ErrNegativeCooldown   = errors.New("cooldown cannot be negative")
	ErrCooldownOutOfRange = errors.New("cooldown cannot exceed one day")
	ErrInvalidCurrency    = errors.New("currency must be a 3-letter ISO code")
)

type Place struct {
	id              uuid.UUID
	name            string
	pricing         PricingConfig
	cooldownMinutes int
	currency        string
}

func NewPlace(id uuid.UUID, name string, pricing PricingConfig, cooldownMinutes int, currency string) (*Place, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyPlaceName
	}
	if len(name) > MaxPlaceNameLength {
		return nil, ErrPlaceNameTooLong
	}
	if cooldownMinutes < 0 {
		return nil, ErrNegativeCooldown
	}
	if cooldownMinutes > MaxCooldownMinutes {
		return nil, ErrCooldownOutOfRange
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}

	return &Place{
		id:              id,
		name:            name,
		pricing:         pricing,
		cooldownMinutes: cooldownMinutes,
		currency:        currency,
	}, nil
}

func (p *Place) ID() uuid.UUID          { return p.id }
func (p *Place) Name() string           { return p.name }
func (p *Place) Pricing() PricingConfig { return p.pricing }
func (p *Place) CooldownMinutes() int   { return p.cooldownMinutes }
func (p *Place) Currency() string       { return p.currency }

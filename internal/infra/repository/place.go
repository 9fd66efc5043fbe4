package repository

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const placeColumns = `id, name, hourly_rate_cents, full_day_hours, full_day_price_cents, cooldown_minutes, currency`

type PlaceRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPlaceRepository(dbtx db.DBTX, logger *slog.Logger) *PlaceRepository {
	return &PlaceRepository{db: dbtx, logger: logger}
}

func (r *PlaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Place, error) {
	row := r.db.QueryRow(ctx, `SELECT `+placeColumns+` FROM places WHERE id = $1`, id)
	return r.scan(row, "failed to find place")
}

func (r *PlaceRepository) LockByID(ctx context.Context, id uuid.UUID) (*booking.Place, error) {
	row := r.db.QueryRow(ctx, `SELECT `+placeColumns+` FROM places WHERE id = $1 FOR UPDATE`, id)
	return r.scan(row, "failed to lock place")
}

func (r *PlaceRepository) Create(ctx context.Context, place *booking.Place) error {
	pricing := place.Pricing()
	_, err := r.db.Exec(ctx, `
		INSERT INTO places (`+placeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		place.ID(),
		place.Name(),
		pricing.HourlyRate,
		int32(pricing.FullDayHours),
		pricing.FullDayDiscountPrice,
		int32(place.CooldownMinutes()),
		place.Currency(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to create place", err)
	}
	return nil
}

func (r *PlaceRepository) scan(row pgx.Row, msg string) (*booking.Place, error) {
	var (
		id           uuid.UUID
		name         string
		hourlyRate   int64
		fullDayHours int32
		fullDayPrice int64
		cooldown     int32
		currency     string
	)
	if err := row.Scan(&id, &name, &hourlyRate, &fullDayHours, &fullDayPrice, &cooldown, &currency); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.Classify(err), msg, err)
	}

	pricing, err := booking.NewPricingConfig(hourlyRate, int(fullDayHours), fullDayPrice)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored place pricing is invalid", err)
	}
	place, err := booking.NewPlace(id, name, pricing, int(cooldown), currency)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored place is invalid", err)
	}
	return place, nil
}

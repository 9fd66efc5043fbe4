package readstore

import (
	"context"
	"log/slog"
	"time"

	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PlaceReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPlaceReadStore(dbtx db.DBTX, logger *slog.Logger) *PlaceReadStore {
	return &PlaceReadStore{db: dbtx, logger: logger}
}

func (r *PlaceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PlaceView, error) {
	var (
		v            queries.PlaceView
		fullDayHours int32
		cooldown     int32
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, hourly_rate_cents, full_day_hours, full_day_price_cents, cooldown_minutes, currency, created_at
		FROM places WHERE id = $1`, id,
	).Scan(&v.ID, &v.Name, &v.HourlyRate, &fullDayHours, &v.FullDayPrice, &cooldown, &v.Currency, &v.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "place not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get place view by id", err)
	}
	v.FullDayHours = int(fullDayHours)
	v.CooldownMinutes = int(cooldown)
	return &v, nil
}

func (r *PlaceReadStore) FindBookedSlots(ctx context.Context, placeID uuid.UUID, date time.Time) ([]*queries.BookedSlotView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.booking_id, s.slot_date, s.start_hour, s.end_hour, p.cooldown_minutes
		FROM booking_slots s
		JOIN bookings b ON b.id = s.booking_id
		JOIN places p ON p.id = b.place_id
		WHERE b.place_id = $1
		  AND b.status <> 'canceled'
		  AND s.slot_date = $2
		ORDER BY s.start_hour`,
		placeID, pgconv.DateToPgtype(date),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get booked slots", err)
	}
	defer rows.Close()

	var out []*queries.BookedSlotView
	for rows.Next() {
		var (
			v          queries.BookedSlotView
			slotDate   pgtype.Date
			start, end int16
			cooldown   int32
		)
		if err := rows.Scan(&v.BookingID, &slotDate, &start, &end, &cooldown); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan booked slot", err)
		}
		v.Date = pgconv.DateFromPgtype(slotDate)
		v.StartHour = int(start)
		v.EndHour = int(end)
		v.CooldownMinutes = int(cooldown)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate booked slots", err)
	}
	return out, nil
}

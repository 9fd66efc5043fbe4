package repository

import (
	"context"
	"log/slog"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, place_id, user_id, status, payment_status, payment_method, payment_id, paid_at,
	total_hours, total_price_cents, currency, note, created_at, updated_at`

type BookingRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookingRepository(dbtx db.DBTX, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{db: dbtx, logger: logger}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		b.ID(),
		b.PlaceID(),
		b.UserID(),
		b.Status().String(),
		b.PaymentStatus().String(),
		pgconv.TextToPgtype(b.PaymentMethod()),
		pgconv.TextToPgtype(b.PaymentID()),
		pgconv.TimePtrToPgtype(b.PaidAt()),
		int32(b.TotalHours()),
		b.TotalPrice(),
		b.Currency(),
		b.Note(),
		b.CreatedAt(),
		b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to create booking", err)
	}

	for i, line := range b.Lines() {
		slot := b.Slots()[i]
		_, err := r.db.Exec(ctx, `
			INSERT INTO booking_slots (booking_id, position, slot_date, start_hour, end_hour, hours, price_cents, price_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			b.ID(),
			int32(i),
			pgconv.DateToPgtype(slot.Date().Time()),
			int16(slot.StartHour()),
			int16(slot.EndHour()),
			int32(line.Hours),
			line.Price,
			line.PriceType,
		)
		if err != nil {
			return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to create booking slot", err)
		}
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.load(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
}

func (r *BookingRepository) LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.load(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
}

// UpdateState persists status and payment fields; slots and prices never change after creation.
func (r *BookingRepository) UpdateState(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET status = $2, payment_status = $3, payment_method = $4, payment_id = $5, paid_at = $6, updated_at = $7
		WHERE id = $1`,
		b.ID(),
		b.Status().String(),
		b.PaymentStatus().String(),
		pgconv.TextToPgtype(b.PaymentMethod()),
		pgconv.TextToPgtype(b.PaymentID()),
		pgconv.TimePtrToPgtype(b.PaidAt()),
		b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) BookedSlots(ctx context.Context, placeID uuid.UUID, dates []booking.Date, cooldownMinutes int) ([]booking.BookedSlot, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		days = append(days, d.Time())
	}

	rows, err := r.db.Query(ctx, `
		SELECT s.slot_date, s.start_hour, s.end_hour
		FROM booking_slots s
		JOIN bookings b ON b.id = s.booking_id
		WHERE b.place_id = $1
		  AND b.status <> 'canceled'
		  AND s.slot_date = ANY($2::date[])
		ORDER BY s.slot_date, s.start_hour`,
		placeID, days,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load booked slots", err)
	}
	defer rows.Close()

	var booked []booking.BookedSlot
	for rows.Next() {
		var (
			date       pgtype.Date
			start, end int16
		)
		if err := rows.Scan(&date, &start, &end); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan booked slot", err)
		}
		slot, err := booking.NewTimeSlot(booking.DateOf(pgconv.DateFromPgtype(date)), int(start), int(end))
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored slot is invalid", err)
		}
		booked = append(booked, booking.BookedSlot{Slot: slot, CooldownMinutes: cooldownMinutes})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate booked slots", err)
	}
	return booked, nil
}

func (r *BookingRepository) PaymentStatus(ctx context.Context, bookingID uuid.UUID) (*shared.PaymentSnapshot, error) {
	var (
		snap   shared.PaymentSnapshot
		method pgtype.Text
		payID  pgtype.Text
		paidAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, status, payment_status, payment_method, payment_id, paid_at
		FROM bookings WHERE id = $1`, bookingID,
	).Scan(&snap.BookingID, &snap.UserID, &snap.Status, &snap.PaymentStatus, &method, &payID, &paidAt)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to read payment status", err)
	}
	snap.PaymentMethod = pgconv.StringFromPgtype(method)
	snap.PaymentID = pgconv.StringFromPgtype(payID)
	snap.PaidAt = pgconv.TimePtrFromPgtype(paidAt)
	return &snap, nil
}

func (r *BookingRepository) load(ctx context.Context, query string, id uuid.UUID) (*booking.Booking, error) {
	var (
		bookingID, placeID, userID uuid.UUID
		status, paymentStatus      string
		method, paymentID          pgtype.Text
		paidAt                     pgtype.Timestamptz
		totalHours                 int32
		totalPrice                 int64
		currency, note             string
		createdAt, updatedAt       time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bookingID, &placeID, &userID, &status, &paymentStatus, &method, &paymentID, &paidAt,
		&totalHours, &totalPrice, &currency, &note, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to find booking", err)
	}

	slots, lines, err := r.loadSlots(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		bookingID, placeID, userID,
		slots, lines,
		int(totalHours), totalPrice, currency,
		booking.Status(status), booking.PaymentStatus(paymentStatus),
		pgconv.StringFromPgtype(method), pgconv.StringFromPgtype(paymentID),
		pgconv.TimePtrFromPgtype(paidAt),
		note, createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) loadSlots(ctx context.Context, bookingID uuid.UUID) ([]booking.TimeSlot, []booking.PriceBreakdownLine, error) {
	rows, err := r.db.Query(ctx, `
		SELECT slot_date, start_hour, end_hour, hours, price_cents, price_type
		FROM booking_slots WHERE booking_id = $1 ORDER BY position`, bookingID)
	if err != nil {
		return nil, nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load booking slots", err)
	}

	slots, lines, err := scanSlotLines(rows)
	if err != nil {
		return nil, nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan booking slots", err)
	}
	return slots, lines, nil
}

func scanSlotLines(rows pgx.Rows) ([]booking.TimeSlot, []booking.PriceBreakdownLine, error) {
	defer rows.Close()

	var (
		slots []booking.TimeSlot
		lines []booking.PriceBreakdownLine
	)
	for rows.Next() {
		var (
			date       pgtype.Date
			start, end int16
			hours      int32
			price      int64
			priceType  string
		)
		if err := rows.Scan(&date, &start, &end, &hours, &price, &priceType); err != nil {
			return nil, nil, err
		}
		slot, err := booking.NewTimeSlot(booking.DateOf(pgconv.DateFromPgtype(date)), int(start), int(end))
		if err != nil {
			return nil, nil, err
		}
		slots = append(slots, slot)
		lines = append(lines, booking.PriceBreakdownLine{
			Date:      slot.Date(),
			TimeRange: slot.TimeRange(),
			Hours:     int(hours),
			Price:     price,
			PriceType: priceType,
		})
	}
	return slots, lines, rows.Err()
}

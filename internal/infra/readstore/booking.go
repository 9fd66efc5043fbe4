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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingListSelect = `
	SELECT b.id, b.place_id, p.name, b.status, b.payment_status, b.total_hours, b.total_price_cents,
	       b.currency, COALESCE(MIN(s.slot_date), b.created_at::date), b.created_at
	FROM bookings b
	JOIN places p ON p.id = b.place_id
	LEFT JOIN booking_slots s ON s.booking_id = b.id`

const bookingListGroup = `
	GROUP BY b.id, p.name
	ORDER BY b.created_at DESC, b.id DESC
	LIMIT $2`

type BookingReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookingReadStore(dbtx db.DBTX, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{db: dbtx, logger: logger}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		v          queries.BookingView
		method     pgtype.Text
		paymentID  pgtype.Text
		paidAt     pgtype.Timestamptz
		totalHours int32
	)
	err := r.db.QueryRow(ctx, `
		SELECT b.id, b.place_id, p.name, b.user_id, b.status, b.payment_status, b.payment_method, b.payment_id,
		       b.paid_at, b.total_hours, b.total_price_cents, b.currency, b.note, b.created_at, b.updated_at
		FROM bookings b
		JOIN places p ON p.id = b.place_id
		WHERE b.id = $1`, id,
	).Scan(
		&v.ID, &v.PlaceID, &v.PlaceName, &v.UserID, &v.Status, &v.PaymentStatus, &method, &paymentID,
		&paidAt, &totalHours, &v.TotalPrice, &v.Currency, &v.Note, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get booking view by id", err)
	}
	v.PaymentMethod = pgconv.StringFromPgtype(method)
	v.PaymentID = pgconv.StringFromPgtype(paymentID)
	v.PaidAt = pgconv.TimePtrFromPgtype(paidAt)
	v.TotalHours = int(totalHours)

	slots, err := r.findSlots(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Slots = slots
	return &v, nil
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingListSelect+`
	WHERE b.user_id = $1`+bookingListGroup, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get bookings first page by user", err)
	}
	return r.scanList(rows)
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingListSelect+`
	WHERE b.user_id = $1 AND (b.created_at, b.id) < ($3, $4)`+bookingListGroup,
		userID, limit, lastCreatedAt, lastID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get bookings keyset by user", err)
	}
	return r.scanList(rows)
}

func (r *BookingReadStore) FindAwaitingPayment(ctx context.Context, createdBefore time.Time, limit int32) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id FROM bookings
		WHERE status = 'pending' AND payment_status = 'unpaid' AND created_at < $1
		ORDER BY created_at
		LIMIT $2`, createdBefore, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get bookings awaiting payment", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan bookings awaiting payment", err)
	}
	return ids, nil
}

func (r *BookingReadStore) findSlots(ctx context.Context, bookingID uuid.UUID) ([]queries.BookingSlotView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT slot_date, start_hour, end_hour, hours, price_cents, price_type
		FROM booking_slots WHERE booking_id = $1 ORDER BY position`, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get booking slots", err)
	}
	defer rows.Close()

	slots := []queries.BookingSlotView{}
	for rows.Next() {
		var (
			s          queries.BookingSlotView
			date       pgtype.Date
			start, end int16
			hours      int32
		)
		if err := rows.Scan(&date, &start, &end, &hours, &s.Price, &s.PriceType); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan booking slot", err)
		}
		s.Date = pgconv.DateFromPgtype(date)
		s.StartHour = int(start)
		s.EndHour = int(end)
		s.Hours = int(hours)
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate booking slots", err)
	}
	return slots, nil
}

func (r *BookingReadStore) scanList(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			it         queries.BookingListItem
			totalHours int32
			firstDate  pgtype.Date
		)
		if err := rows.Scan(&it.ID, &it.PlaceID, &it.PlaceName, &it.Status, &it.PaymentStatus,
			&totalHours, &it.TotalPrice, &it.Currency, &firstDate, &it.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan booking list item", err)
		}
		it.TotalHours = int(totalHours)
		it.FirstDate = pgconv.DateFromPgtype(firstDate)
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate booking list", err)
	}
	return items, nil
}

package commands

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/payment"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RecordPaymentRequest struct {
	Method    string
	PaymentID string
}

type WaitOptions struct {
	Immediate   bool
	MaxAttempts int
}

type PaymentCommands interface {
	// RecordPayment stores a confirmation coming from the payment provider.
	RecordPayment(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID, req RecordPaymentRequest) error
	CheckStatus(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) (*payment.CheckResult, error)
	WaitForPayment(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID, opts WaitOptions) (*payment.Outcome, error)
	PollBatch(ctx context.Context, bookingIDs []uuid.UUID, onResult func(payment.Outcome)) ([]payment.Outcome, error)
}

type paymentCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	logger  *slog.Logger
	poller  *payment.Poller
	checker payment.StatusChecker
	cfg     config.PaymentConfig
}

func NewPaymentCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger, cfg config.Config) PaymentCommands {
	checker := NewBookingStatusChecker(uow)
	return &paymentCommandsImpl{
		uow:     uow,
		clock:   clk,
		logger:  logger,
		poller:  payment.NewPoller(checker, clk, logger, ScheduleFromConfig(cfg.Payment)),
		checker: checker,
		cfg:     cfg.Payment,
	}
}

// ScheduleFromConfig overrides the default poll intervals with the configured ones.
func ScheduleFromConfig(cfg config.PaymentConfig) payment.Schedule {
	s := payment.DefaultSchedule()
	if cfg.ShortInterval > 0 {
		s.Short = cfg.ShortInterval
	}
	if cfg.NormalInterval > 0 {
		s.Normal = cfg.NormalInterval
	}
	if cfg.SlowInterval > 0 {
		s.Slow = cfg.SlowInterval
	}
	if cfg.FinalInterval > 0 {
		s.Final = cfg.FinalInterval
	}
	return s
}

func (uc *paymentCommandsImpl) RecordPayment(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID, req RecordPaymentRequest) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, terr := lockOwnedBooking(ctx, tx, bookingID, userID)
		if terr != nil {
			return terr
		}
		if terr = b.MarkPaid(req.Method, req.PaymentID, uc.clock.Now()); terr != nil {
			return errs.Mark(terr, ErrBookingNotPayable)
		}
		if terr = tx.Bookings().UpdateState(ctx, b); terr != nil {
			if infra.IsKind(terr, infra.KindDuplicateKey) {
				return errs.Mark(terr, ErrDuplicatePayment)
			}
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("payment recorded", "booking_id", bookingID.String(), "method", req.Method)
	return nil
}

func (uc *paymentCommandsImpl) CheckStatus(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) (*payment.CheckResult, error) {
	if err := uc.ensureOwner(ctx, bookingID, userID); err != nil {
		return nil, err
	}
	res, err := uc.checker.Check(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (uc *paymentCommandsImpl) WaitForPayment(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID, opts WaitOptions) (*payment.Outcome, error) {
	if err := uc.ensureOwner(ctx, bookingID, userID); err != nil {
		return nil, err
	}

	// a request holds a connection open, so it gets a shorter session than background polling
	limit := uc.cfg.RequestMaxAttempts
	if limit <= 0 {
		limit = uc.cfg.MaxAttempts
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 || (limit > 0 && maxAttempts > limit) {
		maxAttempts = limit
	}

	out, err := uc.poller.Poll(ctx, bookingID, payment.Options{
		MaxAttempts: maxAttempts,
		Immediate:   opts.Immediate,
	})
	return &out, err
}

func (uc *paymentCommandsImpl) PollBatch(ctx context.Context, bookingIDs []uuid.UUID, onResult func(payment.Outcome)) ([]payment.Outcome, error) {
	return uc.poller.PollBatch(ctx, bookingIDs, payment.BatchOptions{
		MaxAttempts: uc.cfg.BatchMaxAttempts,
		Delay:       uc.cfg.BatchDelay,
		OnResult:    onResult,
	})
}

func (uc *paymentCommandsImpl) ensureOwner(ctx context.Context, bookingID, userID uuid.UUID) error {
	snap, err := uc.uow.CommandReads().PaymentStatus(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.UserID != userID {
		return ErrBookingNotOwned
	}
	return nil
}

// bookingStatusChecker answers payment status from the bookings table,
// which the payment provider confirmation updates.
type bookingStatusChecker struct {
	uow shared.UnitOfWork
}

func NewBookingStatusChecker(uow shared.UnitOfWork) payment.StatusChecker {
	return &bookingStatusChecker{uow: uow}
}

func (c *bookingStatusChecker) Check(ctx context.Context, bookingID uuid.UUID) (payment.CheckResult, error) {
	snap, err := c.uow.CommandReads().PaymentStatus(ctx, bookingID)
	if err != nil {
		return payment.CheckResult{Success: false, Message: "payment status unavailable"},
			errs.Mark(err, ErrPaymentCheckFailed)
	}

	res := payment.CheckResult{
		Success:       true,
		IsPaid:        snap.PaymentStatus == booking.PaymentPaid.String(),
		BookingStatus: snap.Status,
		PaymentID:     snap.PaymentID,
		Method:        snap.PaymentMethod,
	}
	switch {
	case res.IsPaid:
		res.Message = "payment confirmed"
	case snap.Status == booking.StatusCanceled.String():
		res.Message = "booking canceled"
	default:
		res.Message = "payment not received yet"
	}
	return res, nil
}

package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
)

const DefaultMaxAttempts = 15

var ErrPollCanceled = errs.New("payment poll canceled")

// Options configures one poll session. Immediate skips the initial delay before the first attempt.
type Options struct {
	MaxAttempts int
	Immediate   bool
	OnProgress  ProgressFunc
}

type Poller struct {
	checker  StatusChecker
	clock    clock.Clock
	logger   *slog.Logger
	schedule Schedule
}

func NewPoller(checker StatusChecker, clk clock.Clock, logger *slog.Logger, schedule Schedule) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Poller{
		checker:  checker,
		clock:    clk,
		logger:   logger,
		schedule: schedule,
	}
}

// session holds the counters of one poll run; nothing is shared between runs.
type session struct {
	outcome      Outcome
	maxAttempts  int
	notFound     int
	lastMessage  string
	lastWasError bool
}

func (s *session) progress() Progress {
	return Progress{
		AttemptsMade:        s.outcome.Attempts,
		MaxAttempts:         s.maxAttempts,
		ConsecutiveNotFound: s.notFound,
		LastMessage:         s.lastMessage,
	}
}

// Poll checks the payment status of a booking until it is paid or MaxAttempts checks were made.
// Running out of attempts is not an error. The only error return is cancellation through ctx,
// reported together with the outcome collected so far.
func (p *Poller) Poll(ctx context.Context, bookingID uuid.UUID, opts Options) (Outcome, error) {
	s := &session{
		outcome:     Outcome{BookingID: bookingID, State: StatePolling},
		maxAttempts: opts.MaxAttempts,
	}
	if s.maxAttempts <= 0 {
		s.maxAttempts = DefaultMaxAttempts
	}

	log := p.logger.With("booking_id", bookingID.String())
	log.Debug("payment poll started", "max_attempts", s.maxAttempts, "immediate", opts.Immediate)

	if !opts.Immediate {
		if err := p.wait(ctx, p.schedule.Initial()); err != nil {
			return p.canceled(s, err)
		}
	}

	for s.outcome.Attempts < s.maxAttempts {
		if err := ctx.Err(); err != nil {
			return p.canceled(s, err)
		}

		s.outcome.Attempts++
		res, err := p.checker.Check(ctx, bookingID)

		switch {
		case err != nil || !res.Success:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return p.canceled(s, ctxErr)
			}
			s.lastWasError = true
			s.lastMessage = serviceErrorMessage(res, err)
			log.Warn("payment status check failed",
				"attempt", s.outcome.Attempts,
				"error", s.lastMessage,
			)
		case res.IsPaid:
			s.lastWasError = false
			s.lastMessage = res.Message
			s.outcome.State = StatePaid
			s.outcome.IsPaid = true
			s.outcome.BookingStatus = res.BookingStatus
			s.outcome.PaymentID = res.PaymentID
			s.outcome.Method = res.Method
			s.outcome.Message = nonEmpty(res.Message, "payment confirmed")
			notify(opts.OnProgress, s.progress())
			log.Info("payment confirmed", "attempts", s.outcome.Attempts, "method", res.Method)
			return s.outcome, nil
		default:
			s.lastWasError = false
			s.notFound++
			s.lastMessage = nonEmpty(res.Message, "payment not received yet")
			s.outcome.BookingStatus = res.BookingStatus
		}

		notify(opts.OnProgress, s.progress())

		if s.outcome.Attempts >= s.maxAttempts {
			break
		}
		if err := p.wait(ctx, p.schedule.Next(s.outcome.Attempts, s.notFound)); err != nil {
			return p.canceled(s, err)
		}
	}

	s.outcome.IsPaid = false
	s.outcome.State = StateUnpaidTimeout
	if s.lastWasError {
		s.outcome.State = StateError
	}
	s.outcome.Message = fmt.Sprintf("payment not confirmed after %d attempts", s.outcome.Attempts)
	if s.lastMessage != "" {
		s.outcome.Message += ": " + s.lastMessage
	}
	log.Info("payment poll timed out",
		"attempts", s.outcome.Attempts,
		"not_found", s.notFound,
		"state", s.outcome.State.String(),
	)
	return s.outcome, nil
}

func (p *Poller) wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.clock.After(d):
		return nil
	}
}

func (p *Poller) canceled(s *session, cause error) (Outcome, error) {
	s.outcome.State = StateCanceled
	s.outcome.IsPaid = false
	s.outcome.Message = "payment poll canceled"
	p.logger.Info("payment poll canceled",
		"booking_id", s.outcome.BookingID.String(),
		"attempts", s.outcome.Attempts,
	)
	return s.outcome, markCanceled(cause)
}

func markCanceled(cause error) error {
	return errs.Mark(errs.Wrap(cause, "payment poll"), ErrPollCanceled)
}

func serviceErrorMessage(res CheckResult, err error) string {
	if err != nil {
		return err.Error()
	}
	return nonEmpty(res.Message, "payment status unavailable")
}

func notify(fn ProgressFunc, pr Progress) {
	if fn != nil {
		fn(pr)
	}
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultBatchMaxAttempts = 3
	DefaultBatchDelay       = time.Second
)

type BatchOptions struct {
	MaxAttempts int
	Delay       time.Duration
	OnResult    func(Outcome)
}

// PollBatch polls bookings one after another with short immediate sessions.
// On cancellation it returns the outcomes finished so far.
func (p *Poller) PollBatch(ctx context.Context, ids []uuid.UUID, opts BatchOptions) ([]Outcome, error) {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultBatchMaxAttempts
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultBatchDelay
	}

	outcomes := make([]Outcome, 0, len(ids))
	for i, id := range ids {
		if i > 0 {
			if err := p.wait(ctx, opts.Delay); err != nil {
				return outcomes, p.batchCanceled(err)
			}
		}

		out, err := p.Poll(ctx, id, Options{MaxAttempts: opts.MaxAttempts, Immediate: true})
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, out)
		if opts.OnResult != nil {
			opts.OnResult(out)
		}
	}
	return outcomes, nil
}

func (p *Poller) batchCanceled(cause error) error {
	p.logger.Info("payment batch poll canceled")
	return markCanceled(cause)
}

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"room-booking/internal/domain/payment"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/spf13/cobra"
)

func newPollPaymentsCmd() *cobra.Command {
	var (
		olderThan time.Duration
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "poll-payments",
		Short: "Check pending unpaid bookings for payment confirmation, one at a time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				q        queries.BookingQueries
				payments commands.PaymentCommands
				logger   *slog.Logger
			)
			return runJob(cmd.Context(), func(ctx context.Context) error {
				return pollAwaiting(ctx, cmd.OutOrStdout(), q, payments, logger, time.Now().Add(-olderThan), limit)
			}, &q, &payments, &logger)
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", time.Minute, "only bookings created at least this long ago")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum bookings per run")
	return cmd
}

// pollAwaiting runs one batch over the bookings created before cutoff and prints a line per booking
// followed by a summary. Outcomes finished before an error are still summarized.
func pollAwaiting(
	ctx context.Context,
	out io.Writer,
	q queries.BookingQueries,
	payments commands.PaymentCommands,
	logger *slog.Logger,
	cutoff time.Time,
	limit int,
) error {
	ids, err := q.AwaitingPayment(ctx, cutoff, limit)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(out, "no bookings awaiting payment")
		return nil
	}
	logger.Info("polling payments", "bookings", len(ids))

	outcomes, err := payments.PollBatch(ctx, ids, func(o payment.Outcome) {
		fmt.Fprintf(out, "%s\t%s\tattempts=%d\t%s\n", o.BookingID, o.State, o.Attempts, o.Message)
	})
	paid := 0
	for _, o := range outcomes {
		if o.IsPaid {
			paid++
		}
	}
	fmt.Fprintf(out, "checked %d of %d bookings, %d paid\n", len(outcomes), len(ids), paid)
	return err
}

package cli

import (
	"context"
	"time"

	"room-booking/cmd/bootstrap"

	"go.uber.org/fx"
)

const jobStartTimeout = 15 * time.Second

// runJob starts the core graph without the HTTP layer, fills targets and runs fn.
func runJob(ctx context.Context, fn func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		bootstrap.CoreModule,
		fx.NopLogger,
		fx.Populate(targets...),
	)

	startCtx, cancel := context.WithTimeout(ctx, jobStartTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	}()

	return fn(ctx)
}

package cli

import (
	"context"
	"fmt"

	"room-booking/internal/usecase/commands"

	"github.com/spf13/cobra"
)

func newPlaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Manage bookable places",
	}
	cmd.AddCommand(newPlaceCreateCmd())
	return cmd
}

func newPlaceCreateCmd() *cobra.Command {
	var req commands.CreatePlaceRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a place with its pricing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var places commands.PlaceCommands
			return runJob(cmd.Context(), func(ctx context.Context) error {
				id, err := places.Create(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			}, &places)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "place name")
	cmd.Flags().Int64Var(&req.HourlyRate, "hourly-rate", 0, "hourly rate in minor units (cents)")
	cmd.Flags().IntVar(&req.FullDayHours, "full-day-hours", 0, "hours that make up a full day (default from config)")
	cmd.Flags().Int64Var(&req.FullDayPrice, "full-day-price", 0, "full-day price in minor units; 0 disables full-day pricing")
	cmd.Flags().IntVar(&req.CooldownMinutes, "cooldown", 0, "minutes blocked after each booking")
	cmd.Flags().StringVar(&req.Currency, "currency", "", "ISO 4217 currency code (default from config)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("hourly-rate")
	return cmd
}

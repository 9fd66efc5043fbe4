package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/money"
	"room-booking/internal/usecase/commands"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

type quoteFlags struct {
	hourlyRate   int64
	fullDayHours int
	fullDayPrice int64
	currency     string
	slots        []string
}

func newQuoteCmd() *cobra.Command {
	var f quoteFlags

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price slots offline with the given rates",
		Example: `  roombook quote --hourly-rate 1500 --full-day-price 9000 \
    --slot 2025-03-10,09:00,17:00 --slot 2025-03-11,10:00,12:00`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pricing, err := booking.NewPricingConfig(f.hourlyRate, f.fullDayHours, f.fullDayPrice)
			if err != nil {
				return err
			}
			inputs, err := parseSlotFlags(f.slots)
			if err != nil {
				return err
			}
			slots, err := commands.ParseSlots(inputs)
			if err != nil {
				return err
			}
			quote := booking.NewDefaultPriceCalculator().Calculate(pricing, slots)
			return printQuote(cmd.OutOrStdout(), quote, f.currency)
		},
	}

	cmd.Flags().Int64Var(&f.hourlyRate, "hourly-rate", 0, "hourly rate in minor units (cents)")
	cmd.Flags().IntVar(&f.fullDayHours, "full-day-hours", booking.DefaultFullDayHours, "hours that make up a full day")
	cmd.Flags().Int64Var(&f.fullDayPrice, "full-day-price", 0, "full-day price in minor units; 0 disables full-day pricing")
	cmd.Flags().StringVar(&f.currency, "currency", "USD", "ISO 4217 currency code used for display")
	cmd.Flags().StringArrayVar(&f.slots, "slot", nil, "slot as DATE,START,END (repeatable)")
	_ = cmd.MarkFlagRequired("hourly-rate")
	_ = cmd.MarkFlagRequired("slot")
	return cmd
}

func parseSlotFlags(values []string) ([]commands.SlotInput, error) {
	inputs := make([]commands.SlotInput, 0, len(values))
	for _, v := range values {
		parts := strings.Split(v, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("slot %q: expected DATE,START,END", v)
		}
		inputs = append(inputs, commands.SlotInput{
			Date:      strings.TrimSpace(parts[0]),
			StartTime: strings.TrimSpace(parts[1]),
			EndTime:   strings.TrimSpace(parts[2]),
		})
	}
	return inputs, nil
}

func printQuote(w io.Writer, quote booking.PriceQuote, currency string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTIME\tHOURS\tTYPE\tPRICE")
	for _, line := range quote.Breakdown {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			line.Date, line.TimeRange, line.Hours, line.PriceType,
			money.Format(line.Price, currency, language.English))
	}
	fmt.Fprintf(tw, "TOTAL\t\t%d\t\t%s\n", quote.TotalHours, money.Format(quote.TotalPrice, currency, language.English))
	return tw.Flush()
}

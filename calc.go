package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"timeworth/internal/config"
	"timeworth/internal/handoff"
	"timeworth/internal/locale"
	"timeworth/internal/pay"
	"timeworth/internal/share"
)

func newCalcCmd(cfg func() *config.Config) *cobra.Command {
	var (
		wage     string
		hours    string
		minutes  string
		holiday  bool
		copyText bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute pay for an hourly wage and a duration",
		Example: `  timeworth calc --wage 15,000 --hours 2 --minutes 30
  timeworth calc --wage 10000 --hours 8 --holiday --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := pay.Compute(pay.Input{
				Wage:    cliNumber(wage),
				Hours:   cliNumber(hours),
				Minutes: cliNumber(minutes),
			}, pay.Options{Holiday: holiday})

			cardURL := handoff.CardURL(cfg().Server.BaseURL, res)
			printCalc(cmd.OutOrStdout(), res, cardURL)

			if copyText {
				payload := share.NewPayload(cfg().Server.BaseURL, res)
				n := share.NewService(newClipboard(), nil).Share(cmd.Context(), payload)
				fmt.Fprintln(cmd.OutOrStdout(), n.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&wage, "wage", "", "Hourly wage in won (e.g. 15000, 15,000)")
	cmd.Flags().StringVar(&hours, "hours", "", "Whole hours worked (fractions are dropped)")
	cmd.Flags().StringVar(&minutes, "minutes", "", "Minutes worked, 0-59 (larger values count as 59)")
	cmd.Flags().BoolVar(&holiday, "holiday", false, "Also show pay including weekly holiday pay (approximation)")
	cmd.Flags().BoolVar(&copyText, "copy", false, "Copy share text and card link to the clipboard")
	return cmd
}

func printCalc(w io.Writer, res pay.Result, cardURL string) {
	fmt.Fprintf(w, "Wage:            %s\n", locale.Won(res.Wage))
	fmt.Fprintf(w, "Duration used:   %sh %02dm\n", res.EffectiveHours, res.EffectiveMinutes)
	fmt.Fprintf(w, "Pay:             %s\n", res.PayDisplay())
	if hd := res.HolidayDisplay(); hd != "" {
		fmt.Fprintf(w, "With holiday:    %s\n", hd)
	}
	if res.Pay.IsPositive() {
		fmt.Fprintf(w, "Card:            %s\n", cardURL)
	}
}

// cliNumber drops grouping commas so "15,000" reads the same as in the form.
func cliNumber(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"timeworth/internal/config"
	"timeworth/internal/share"
)

func newDonateCmd(cfg func() *config.Config) *cobra.Command {
	var (
		amount      int64
		copyAccount bool
		copyMemo    bool
	)

	cmd := &cobra.Command{
		Use:   "donate",
		Short: "Show the donation account",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := cfg().Donate.Donation()
			selected := share.SelectAmount(amount)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Account:  %s\n", d.AccountLine())
			fmt.Fprintf(out, "Amount:   %s\n", share.Amount(selected))
			fmt.Fprintf(out, "Memo:     %s\n", d.Memo(selected))

			svc := share.NewService(newClipboard(), nil)
			if copyMemo {
				fmt.Fprintln(out, svc.CopyMemo(cmd.Context(), d, selected).Message)
			}
			if copyAccount {
				fmt.Fprintln(out, svc.CopyAccount(cmd.Context(), d).Message)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", share.DefaultAmount, "Suggested amount (1000, 3000 or 5000)")
	cmd.Flags().BoolVar(&copyAccount, "copy", false, "Copy the account number to the clipboard")
	cmd.Flags().BoolVar(&copyMemo, "copy-memo", false, "Copy the transfer memo to the clipboard")
	return cmd
}

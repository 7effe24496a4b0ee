package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"timeworth/internal/handoff"
	"timeworth/internal/share"
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1, 2)

func newCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "card <link-or-query>",
		Short: "Render a share card from its link",
		Example: `  timeworth card 'https://timeworth.app/card?pay=37500&wage=15000&h=2&m=30'
  timeworth card 'pay=37500&h=2'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printCard(cmd.OutOrStdout(), handoff.ParseQuery(args[0]).Display())
			return nil
		},
	}
}

func printCard(w io.Writer, d handoff.Display) {
	body := strings.Join([]string{
		"TIMEWORTH",
		"",
		lipgloss.NewStyle().Bold(true).Render(d.Pay),
		"",
		fmt.Sprintf("시급 %s · %s · %s", d.Wage, d.Hours, d.Minutes),
		"",
		share.ShareTagline,
	}, "\n")
	fmt.Fprintln(w, cardStyle.Render(body))
}

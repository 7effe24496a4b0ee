package main

import (
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"timeworth/internal/config"
	"timeworth/internal/logger"
	"timeworth/internal/metrics"
	"timeworth/internal/share"
	"timeworth/internal/web"
)

const appVersion = "0.1.0"

// newClipboard is the clipboard the --copy flags write to.
var newClipboard = func() share.Clipboard { return share.SystemClipboard{} }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:           "timeworth",
		Short:         "What is your time worth? (CLI or web)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			cfg = c
			logger.Setup(cfg.Log.Level, cfg.Log.JSON, cfg.Log.Source)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if ok, _ := cmd.Flags().GetBool("version"); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "timeworth v%s\n", appVersion)
				return nil
			}
			if cfg.Server.Port <= 0 {
				return cmd.Help()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			printListenAddrs(cmd.OutOrStdout(), cfg.Server.Host, cfg.Server.Port)
			srv := web.New(web.Options{
				BaseURL:  cfg.Server.BaseURL,
				Donation: cfg.Donate.Donation(),
				Version:  appVersion,
				Metrics:  metrics.New(),
				Logger:   logger.GetDefault(),
			})
			return srv.Run(ctx, cfg.Server.Addr())
		},
	}

	cmd.Version = appVersion
	cmd.SetVersionTemplate("timeworth v{{.Version}}\n")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.PersistentFlags().Int("port", 0, "Run web UI on this port (e.g. 8484)")
	cmd.PersistentFlags().String("host", "", "Listen host for the web UI (empty = all interfaces)")
	cmd.PersistentFlags().String("base-url", "", "Public origin used in share links (e.g. https://timeworth.app)")
	logger.AddFlags(cmd)

	cmd.AddCommand(
		newCalcCmd(func() *config.Config { return cfg }),
		newCardCmd(),
		newDonateCmd(func() *config.Config { return cfg }),
	)
	return cmd
}

func printListenAddrs(w io.Writer, host string, port int) {
	fmt.Fprintln(w, "Listening on:")
	if host != "" {
		fmt.Fprintf(w, "  http://%s/\n\n", net.JoinHostPort(host, fmt.Sprint(port)))
		return
	}
	fmt.Fprintf(w, "  http://127.0.0.1:%d/\n", port)

	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			ip, _, err := net.ParseCIDR(a.String())
			if err != nil || ip == nil || ip.IsLoopback() || ip.To4() == nil {
				continue
			}
			fmt.Fprintf(w, "  http://%s:%d/\n", ip.String(), port)
		}
	}
	fmt.Fprintln(w)
}

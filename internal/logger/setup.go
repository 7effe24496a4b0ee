package logger

import (
	"github.com/spf13/cobra"
)

// AddFlags registers the logging flags on a root command.
func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-level", string(InfoLevel), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("log-json", false, "Log as JSON")
	cmd.PersistentFlags().Bool("log-source", false, "Include caller in log lines")
}

// Setup initializes the default logger from resolved settings.
func Setup(level string, logJSON, logSource bool) {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	cfg.JSON = logJSON
	cfg.AddSource = logSource
	Init(cfg)
}

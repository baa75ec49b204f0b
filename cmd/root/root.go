// Package root contains the root command for the application.
package root

import (
	"csvraw/internal/config"
	"csvraw/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded application configuration, available to all
	// subcommands after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "csvraw",
		Short: "Convert settlement instruction CSV files to depository RAW files.",
		Long: `csvraw converts tabular settlement instructions (one row per
securities transfer) into the tag-delimited RAW format consumed by the
NSDL and CDSL depository back-office systems. Each produced file is
named by a daily-rolling sequence id; resubmitting identical input
returns the previously produced file instead of re-sequencing it.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to csvraw!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}
)

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"animalbase/internal/platform/config"

	"github.com/spf13/cobra"
)

var (
	cfg config.Config

	flagSource   string
	flagDSN      string
	flagLogLevel string
)

// rootCmd carga la config una sola vez; los flags la pisan.
var rootCmd = &cobra.Command{
	Use:           "animalbase",
	Short:         "Animal list with filter, sort, stars and winners",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed("source") {
			cfg.Source = flagSource
		}
		if flags.Changed("db-dsn") {
			cfg.DBDSN = flagDSN
		}
		if flags.Changed("log-level") {
			cfg.LogLevel = flagLogLevel
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "animals source: file path, http(s) URL or \"postgres\" (default from ANIMALS_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&flagDSN, "db-dsn", "", "postgres DSN when --source=postgres (default from DB_DSN)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "debug|info|warn|error (default from LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(tuiCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

package main

import (
	"animalbase/internal/app"
	"animalbase/internal/platform/logger"

	"github.com/spf13/cobra"
)

var (
	flagPort  string
	flagWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web page and the JSON API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("port") {
			cfg.Port = flagPort
		}
		if cmd.Flags().Changed("watch") {
			cfg.WatchSource = flagWatch
		}

		log := app.NewLogger(cfg)
		defer func() { _ = logger.Sync(log) }()

		return app.Serve(cmd.Context(), cfg, log)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagPort, "port", "", "listen port (default from PORT)")
	serveCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload when the source file changes")
}

package main

import (
	"fmt"
	"io"

	"animalbase/internal/app"
	"animalbase/internal/domain/animals"
	"animalbase/internal/platform/logger"
	"animalbase/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

var (
	flagFilter string
	flagSort   []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the animal list as a table",
	Long: `Load the animals, apply the filter and then each --sort in order,
and print the resulting view.

Sorting the same column twice flips its direction, as on the page:
  animalbase list --sort age            oldest first
  animalbase list --sort age --sort age youngest first`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.LogLevel),
			Format: logger.ParseFormat(cfg.LogFormat),
			App:    cfg.AppName,
			Output: zapcore.AddSync(cmd.ErrOrStderr()),
		})
		defer func() { _ = logger.Sync(log) }()

		svc, sel, err := app.Boot(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer sel.Close()

		snap, err := listView(svc, flagFilter, flagSort)
		if err != nil {
			return err
		}
		return printView(cmd.OutOrStdout(), snap)
	},
}

func init() {
	listCmd.Flags().StringVar(&flagFilter, "filter", animals.Wildcard, "animal type to show (\"*\" for all)")
	listCmd.Flags().StringArrayVar(&flagSort, "sort", nil, "sort column: name|desc|type|age|star|winner (repeatable)")
}

// listView aplica filtro y órdenes sobre un servicio ya cargado.
func listView(svc *animals.Service, filter string, sorts []string) (animals.Snapshot, error) {
	snap := svc.Snapshot()
	if !snap.Loaded {
		return snap, snap.LoadErr
	}

	snap, err := svc.Filter(filter)
	if err != nil {
		return snap, err
	}
	for _, key := range sorts {
		if snap, _, err = svc.Sort(key); err != nil {
			return snap, err
		}
	}
	return snap, nil
}

func printView(w io.Writer, snap animals.Snapshot) error {
	if _, err := fmt.Fprintln(w, tui.Table(snap.View, snap.NextDir, -1)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "filter: %s · showing %d of %d\n", snap.Filter, len(snap.View), snap.Total)
	return err
}

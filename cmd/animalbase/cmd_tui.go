package main

import (
	"animalbase/internal/app"
	"animalbase/internal/platform/logger"
	"animalbase/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the animals interactively",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// la pantalla es de bubbletea: los logs se descartan
		svc, sel, err := app.Boot(cmd.Context(), cfg, logger.Nop())
		if err != nil {
			return err
		}
		defer sel.Close()

		p := tea.NewProgram(tui.New(cmd.Context(), svc), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		_, err = p.Run()
		return err
	},
}

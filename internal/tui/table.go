package tui

import (
	"strconv"

	"animalbase/internal/domain/animals"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	starOn    = "⭐"
	starOff   = "☆"
	trophyOn  = "🏆"
	trophyOff = "·"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	selectedStyle = cellStyle.Reverse(true)
)

// Headers devuelve los títulos de columna con la flecha de la próxima activación.
func Headers(next map[animals.SortKey]animals.Direction) []string {
	out := make([]string, 0, len(animals.SortKeys))
	for i, k := range animals.SortKeys {
		arrow := "▼"
		if next[k] == animals.Asc {
			arrow = "▲"
		}
		out = append(out, strconv.Itoa(i+1)+" "+string(k)+" "+arrow)
	}
	return out
}

// Table pinta la vista completa; cursor < 0 no resalta ninguna fila.
func Table(view []animals.Animal, next map[animals.SortKey]animals.Direction, cursor int) string {
	rows := make([][]string, 0, len(view))
	for _, a := range view {
		star := starOff
		if a.Star {
			star = starOn
		}
		trophy := trophyOff
		if a.Winner {
			trophy = trophyOn
		}
		rows = append(rows, []string{a.Name, a.Desc, a.Type, strconv.Itoa(a.Age), star, trophy})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Headers(next)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == cursor:
				return selectedStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thisguymartin/steep/internal/color"
	"github.com/thisguymartin/steep/internal/palette"
)

const swatchesPerRow = 4

// Labels on a background lighter than this L* are drawn dark.
const lightThreshold = 0.6

// FlavourList renders one line per flavour: the command-line slug and the
// display name. With swatches set, every context field of each flavour is
// drawn as a coloured tile underneath.
func FlavourList(r *lipgloss.Renderer, swatches bool) string {
	title := r.NewStyle().Foreground(ColorPrimary).Bold(true)
	muted := r.NewStyle().Foreground(ColorMuted)

	var blocks []string
	for _, f := range palette.All() {
		header := fmt.Sprintf("%-10s %s", title.Render(f.Slug()), muted.Render(f.String()))
		if !swatches {
			blocks = append(blocks, header)
			continue
		}
		grid := swatchGrid(r, palette.Build(f))
		box := r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1).
			Render(lipgloss.JoinVertical(lipgloss.Left, header, "", grid))
		blocks = append(blocks, box)
	}
	return strings.Join(blocks, "\n") + "\n"
}

func swatchGrid(r *lipgloss.Renderer, ctx palette.Context) string {
	values := ctx.Map()

	var rows, row []string
	for _, name := range palette.Fields() {
		if name == "flavour" {
			continue
		}
		row = append(row, swatch(r, name, values[name]))
		if len(row) == swatchesPerRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func swatch(r *lipgloss.Renderer, name, hex string) string {
	fg := lipgloss.Color("#FFFFFF")
	if c, err := color.ParseHex(hex); err == nil {
		if l, _, _ := c.Colorful().Lab(); l > lightThreshold {
			fg = lipgloss.Color("#11111B")
		}
	}
	return r.NewStyle().
		Background(lipgloss.Color("#" + hex)).
		Foreground(fg).
		Width(20).
		Render(fmt.Sprintf(" %-9s %s", name, hex))
}

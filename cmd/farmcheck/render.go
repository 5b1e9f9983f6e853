package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gardencraft/analysis"
	"github.com/katalvlaran/gardencraft/farm"
)

// Glyphs and styles per cell kind.
var (
	kindGlyph = map[farm.CellKind]string{
		farm.Empty:   "·",
		farm.Border:  "#",
		farm.Terrain: "\"",
		farm.Water:   "~",
	}
	kindStyle = map[farm.CellKind]lipgloss.Style{
		farm.Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		farm.Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		farm.Terrain: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		farm.Water:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	}
	// Fence cells of a single closed loop, and cells it encloses.
	closedFenceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true)
	interiorStyle    = lipgloss.NewStyle().Background(lipgloss.Color("22"))
	frameStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// render draws the grid one glyph per cell. Fence cells are highlighted when
// the fence is a single closed loop; with interior set, enclosed cells are
// shaded too.
func render(g *farm.Grid, r *analysis.Report, interior bool) string {
	lines := make([]string, g.Height())
	for row := 0; row < g.Height(); row++ {
		var sb strings.Builder
		for col := 0; col < g.Width(); col++ {
			kind := g.At(row, col)
			style := kindStyle[kind]
			switch {
			case r.SingleLoop && r.Enclosure.At(row, col):
				style = closedFenceStyle
			case interior && r.Interior.At(row, col):
				style = style.Inherit(interiorStyle)
			}
			sb.WriteString(style.Render(kindGlyph[kind]))
		}
		lines[row] = sb.String()
	}

	return frameStyle.Render(strings.Join(lines, "\n"))
}

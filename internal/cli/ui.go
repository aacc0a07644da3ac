package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tilekit/tilekit/pkg/geometry"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorPink   = lipgloss.Color("212") // Pink - accents
	colorOrange = lipgloss.Color("208") // Orange - accents
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// zonePalette cycles across zone indices so adjacent zones stay
// distinguishable.
var zonePalette = []lipgloss.Color{
	colorCyan, colorGreen, colorYellow, colorBlue, colorPink, colorOrange,
}

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray)
	styleFocused = lipgloss.NewStyle().Bold(true).Foreground(colorPink)
)

func zoneStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(zonePalette[i%len(zonePalette)])
}

// =============================================================================
// Zone Diagrams
// =============================================================================

// diagramCell is one character of a zone diagram with the zone that owns it.
type diagramCell struct {
	ch   rune
	zone int
}

// renderZoneDiagram draws normalized zone rectangles onto a cols x rows
// character grid. Zones are drawn in slot order, so overlapping rects (the
// preview inset for identical zones) layer later slots on top. Each zone gets
// its label centered inside its box.
func renderZoneDiagram(rects []geometry.RectF, cols, rows int, labels []string) string {
	if cols < 4 || rows < 2 {
		return ""
	}

	grid := make([][]diagramCell, rows)
	for y := range grid {
		grid[y] = make([]diagramCell, cols)
		for x := range grid[y] {
			grid[y][x] = diagramCell{ch: ' ', zone: -1}
		}
	}

	set := func(x, y int, ch rune, zone int) {
		if x >= 0 && x < cols && y >= 0 && y < rows {
			grid[y][x] = diagramCell{ch: ch, zone: zone}
		}
	}

	for i, r := range rects {
		x0 := int(math.Round(r.X * float64(cols)))
		y0 := int(math.Round(r.Y * float64(rows)))
		x1 := int(math.Round((r.X+r.Width)*float64(cols))) - 1
		y1 := int(math.Round((r.Y+r.Height)*float64(rows))) - 1
		if x1 >= cols {
			x1 = cols - 1
		}
		if y1 >= rows {
			y1 = rows - 1
		}
		if x1-x0 < 1 || y1-y0 < 1 {
			continue
		}

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				set(x, y, ' ', i)
			}
		}
		for x := x0 + 1; x < x1; x++ {
			set(x, y0, '─', i)
			set(x, y1, '─', i)
		}
		for y := y0 + 1; y < y1; y++ {
			set(x0, y, '│', i)
			set(x1, y, '│', i)
		}
		set(x0, y0, '┌', i)
		set(x1, y0, '┐', i)
		set(x0, y1, '└', i)
		set(x1, y1, '┘', i)

		if i < len(labels) && labels[i] != "" {
			label := labels[i]
			if avail := x1 - x0 - 1; len(label) > avail {
				label = label[:avail]
			}
			ly := (y0 + y1) / 2
			lx := (x0+x1)/2 - len(label)/2
			for j, ch := range label {
				set(lx+j, ly, ch, i)
			}
		}
	}

	var b strings.Builder
	for y := range grid {
		x := 0
		for x < cols {
			// Batch runs of cells owned by the same zone into one styled
			// segment.
			zone := grid[y][x].zone
			var run strings.Builder
			for x < cols && grid[y][x].zone == zone {
				run.WriteRune(grid[y][x].ch)
				x++
			}
			if zone < 0 {
				b.WriteString(styleDim.Render(run.String()))
			} else {
				b.WriteString(zoneStyle(zone).Render(run.String()))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// Table is an aligned text table with a dim separator under the header.
// Widths are measured on visible characters, so styled cells line up.
type Table struct {
	Headers []string
	Rows    [][]string
	// Right lists the column indexes padded on the left, for numbers.
	Right []int
}

// RenderTable renders a left-aligned table.
func RenderTable(headers []string, rows [][]string) string {
	return Table{Headers: headers, Rows: rows}.String()
}

func (t Table) String() string {
	cols := len(t.Headers)
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	measure := func(cells []string) {
		for i := 0; i < cols && i < len(cells); i++ {
			widths[i] = max(widths[i], lipgloss.Width(cells[i]))
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}

	right := make(map[int]bool, len(t.Right))
	for _, c := range t.Right {
		right[c] = true
	}

	var b strings.Builder
	line := func(cells []string, style func(string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", max(0, widths[i]-lipgloss.Width(cell)))
			last := i == cols-1
			switch {
			case right[i]:
				b.WriteString(pad + style(cell))
			case last:
				b.WriteString(style(cell))
			default:
				b.WriteString(style(cell) + pad)
			}
			if !last {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	line(t.Headers, func(s string) string { return StyleHeader.Render(s) })
	seps := make([]string, cols)
	for i, w := range widths {
		seps[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	line(seps, func(s string) string { return s })
	for _, row := range t.Rows {
		line(row, func(s string) string { return s })
	}
	return b.String()
}

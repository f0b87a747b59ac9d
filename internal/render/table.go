package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is an aligned text table with a header separator line.
type Table struct {
	Headers []string
	Rows    [][]string
	// Footer is rendered under a second separator, typically a totals row.
	Footer []string
	// Right lists the column indexes that are right-aligned.
	Right []int
}

const colGap = 2

// Table lays out tbl using visible widths, so styled cells align
// the same as plain ones.
func (t *Theme) Table(tbl Table) string {
	cols := len(tbl.Headers)
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	measure := func(row []string) {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(tbl.Headers)
	for _, row := range tbl.Rows {
		measure(row)
	}
	measure(tbl.Footer)

	right := make(map[int]bool, len(tbl.Right))
	for _, i := range tbl.Right {
		right[i] = true
	}

	var b strings.Builder
	writeRow := func(row []string, style func(string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if style != nil {
				cell = style(cell)
			}
			if right[i] {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if i < cols-1 {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}
	separator := func() {
		for i, w := range widths {
			b.WriteString(t.Dim.Render(strings.Repeat("─", w)))
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(tbl.Headers, func(s string) string { return t.Header.Render(s) })
	separator()
	for _, row := range tbl.Rows {
		writeRow(row, nil)
	}
	if len(tbl.Footer) > 0 {
		separator()
		writeRow(tbl.Footer, func(s string) string { return t.Bold.Render(s) })
	}
	return b.String()
}

// Section renders an uppercase heading with an underline.
func (t *Theme) Section(title string) string {
	upper := strings.ToUpper(title)
	return t.Header.Render(upper) + "\n" + t.Dim.Render(strings.Repeat("─", lipgloss.Width(upper))) + "\n"
}

// Pairs renders label/value lines with the values aligned in one column.
func (t *Theme) Pairs(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if w := lipgloss.Width(p[0]); w > width {
			width = w
		}
	}
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(p[0])
		b.WriteString(strings.Repeat(" ", width-lipgloss.Width(p[0])+colGap))
		b.WriteString(p[1])
		b.WriteString("\n")
	}
	return b.String()
}

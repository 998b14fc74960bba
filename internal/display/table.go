package display

import (
	"strings"
	"unicode/utf8"
)

// Table renders an aligned text table of prayer times, one row per day.
type Table struct {
	headers []string
	rows    [][]string
	// highlightRow is the 0-based row to highlight (usually today), -1 for none.
	highlightRow int
	// highlightCell marks a single cell in highlightRow (usually the next
	// prayer), -1 for none.
	highlightCell int
}

func NewTable(headers []string) *Table {
	return &Table{
		headers:       headers,
		highlightRow:  -1,
		highlightCell: -1,
	}
}

// AddRow appends a row. Missing trailing cells render empty.
func (t *Table) AddRow(values []string) {
	t.rows = append(t.rows, values)
}

// SetHighlightRow sets the 0-based row to render in the accent color.
func (t *Table) SetHighlightRow(idx int) {
	t.highlightRow = idx
}

// SetHighlightCell marks column col of the highlighted row. The rest of that
// row is rendered bold instead of in the accent color.
func (t *Table) SetHighlightCell(col int) {
	t.highlightCell = col
}

// Render produces the table with a two-space indent.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = textWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && textWidth(cell) > widths[i] {
				widths[i] = textWidth(cell)
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("  " + Bold(formatRow(t.headers, widths)) + "\n")

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	sb.WriteString(Dim("  "+strings.Join(sep, "  ")) + "\n")

	for i, row := range t.rows {
		switch {
		case i != t.highlightRow:
			sb.WriteString("  " + formatRow(row, widths) + "\n")
		case t.highlightCell < 0:
			sb.WriteString("  " + Accent(formatRow(row, widths)) + "\n")
		default:
			sb.WriteString("  " + t.formatHighlighted(row, widths) + "\n")
		}
	}
	return sb.String()
}

func (t *Table) formatHighlighted(cells []string, widths []int) string {
	parts := padCells(cells, widths)
	for i := range parts {
		if i == t.highlightCell {
			parts[i] = Accent(parts[i])
		} else {
			parts[i] = Bold(parts[i])
		}
	}
	return strings.Join(parts, "  ")
}

func formatRow(cells []string, widths []int) string {
	return strings.Join(padCells(cells, widths), "  ")
}

func padCells(cells []string, widths []int) []string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = cell + strings.Repeat(" ", w-textWidth(cell))
	}
	return parts
}

// textWidth counts runes so placeholders like "—" align with ASCII cells.
func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// Placeholder is shown in place of a time that does not occur.
const Placeholder = "—"


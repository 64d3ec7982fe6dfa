package output

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// visualLen is the printed width of s, ignoring ANSI styling.
func visualLen(s string) int {
	return utf8.RuneCountInString(ansiPattern.ReplaceAllString(s, ""))
}

// Table renders rows under a styled header. Cells may already be styled;
// widths are measured without escape sequences.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
	right   map[int]bool
	limit   int
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = visualLen(h)
	}
	return &Table{headers: headers, widths: widths, right: map[int]bool{}}
}

// AlignRight right-aligns the given columns, for counts and coin amounts.
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		t.right[c] = true
	}
	return t
}

// Limit caps the rendered rows at n and summarises the rest in a footer.
// Zero shows every row.
func (t *Table) Limit(n int) *Table {
	t.limit = n
	return t
}

// AddRow appends a row. Missing cells are blank and extra ones are dropped.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.headers))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Len returns the number of rows added, shown or not.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) visible() [][]string {
	if t.limit > 0 && len(t.rows) > t.limit {
		return t.rows[:t.limit]
	}
	return t.rows
}

// Render returns the formatted table.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	rows := t.visible()
	widths := append([]int(nil), t.widths...)
	for _, row := range rows {
		for i, cell := range row {
			if w := visualLen(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	line := func(cells []string, style func(string) string) {
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			cell = t.align(i, cell, widths[i])
			if style != nil {
				cell = style(cell)
			}
			sb.WriteString(cell)
		}
		sb.WriteString("\n")
	}

	line(t.headers, func(s string) string { return StyleHeader.Render(s) })
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	line(sep, func(s string) string { return StyleMuted.Render(s) })
	for _, row := range rows {
		line(row, nil)
	}

	if hidden := len(t.rows) - len(rows); hidden > 0 {
		sb.WriteString(StyleMuted.Render(fmt.Sprintf("... and %d more", hidden)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Render()
}

// Fprint writes the table to w.
func (t *Table) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, t.Render())
	return err
}

func (t *Table) align(col int, s string, width int) string {
	if t.right[col] {
		return padLeft(s, width)
	}
	return pad(s, width)
}

// pad right-pads s to the given printed width. Longer strings are kept.
func pad(s string, width int) string {
	n := visualLen(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func padLeft(s string, width int) string {
	n := visualLen(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

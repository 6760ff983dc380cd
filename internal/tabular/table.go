package tabular

import (
	"strconv"
	"strings"
)

// Table is one decoded sheet or CSV: a header row plus data rows, all cells
// as text. Rows may be ragged; missing cells read as empty.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// CellText returns the trimmed cell at col, or "" when col is out of range
// or unbound (negative).
func CellText(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// IsEmptyRow reports whether every cell in the row is blank.
func IsEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ParseNumber parses a cell as a float. Anything that does not parse cleanly
// (including currency symbols or thousands separators) is reported as a
// failure; callers resolve that with their own fixed default.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

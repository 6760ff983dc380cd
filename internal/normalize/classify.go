package normalize

import (
	"strings"

	"invoicepipe/internal/tabular"
)

// Shape is the classification of a tabular input, deciding which parsing
// strategy the normalizer applies.
type Shape int

const (
	ShapeGeneric Shape = iota
	ShapeStructured
	ShapeLineItemsOnly
)

func (s Shape) String() string {
	switch s {
	case ShapeStructured:
		return "structured"
	case ShapeLineItemsOnly:
		return "line-items"
	default:
		return "generic"
	}
}

// Fixed keyword sets and thresholds. These are behavioral constants: counts
// are over DISTINCT keywords present, not occurrences.
var (
	structuredKeywords = []string{
		"business name", "client name", "invoice number",
		"description", "quantity", "rate",
	}
	lineItemKeywords = []string{
		"description", "quantity", "qty", "rate", "price", "amount",
	}
)

const (
	structuredThreshold = 3
	lineItemsThreshold  = 2
)

// Classify inspects the table and decides its shape. Structured always takes
// priority: it scans the flattened data cells (column labels excluded), while
// the line-items check looks at column headers only. A table whose only
// keyword hits sit in its header row is therefore never Structured.
func Classify(t tabular.Table) Shape {
	var b strings.Builder
	for _, row := range t.Rows {
		for _, cell := range row {
			b.WriteString(strings.ToLower(cell))
			b.WriteByte(' ')
		}
	}
	content := b.String()

	if countPresent(content, structuredKeywords) >= structuredThreshold {
		return ShapeStructured
	}

	headerLine := strings.ToLower(strings.Join(t.Headers, " "))
	if countPresent(headerLine, lineItemKeywords) >= lineItemsThreshold {
		return ShapeLineItemsOnly
	}
	return ShapeGeneric
}

func countPresent(content string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			n++
		}
	}
	return n
}

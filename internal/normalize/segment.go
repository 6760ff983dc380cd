package normalize

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"invoicepipe/internal/model"
	"invoicepipe/internal/tabular"
)

// groupKey says which canonical field the grouping key pre-fills.
type groupKey int

const (
	groupByClient groupKey = iota
	groupByInvoiceNumber
)

// Segmenter partitions a flat table that represents several invoices into
// per-record row groups. Grouping by a client column always wins over an
// invoice-number column; this precedence is fixed, not a quality judgment.
type Segmenter struct {
	Logger *slog.Logger
	Now    func() time.Time
}

func NewSegmenter(logger *slog.Logger) *Segmenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Segmenter{Logger: logger, Now: time.Now}
}

func (s *Segmenter) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Segment returns one canonical record per detected group. It never returns
// an empty slice: with no usable grouping column the whole table becomes a
// single Generic-normalized record.
func (s *Segmenter) Segment(t tabular.Table) []model.InvoiceRecord {
	if col := findClientColumn(t.Headers); col >= 0 {
		recs := s.groupBy(t, col, groupByClient)
		s.Logger.Info("segment.ok", "table", t.Name, "key", "client", "column", t.Headers[col], "records", len(recs))
		return recs
	}
	if col := findInvoiceNumberColumn(t.Headers); col >= 0 {
		recs := s.groupBy(t, col, groupByInvoiceNumber)
		s.Logger.Info("segment.ok", "table", t.Name, "key", "invoice_number", "column", t.Headers[col], "records", len(recs))
		return recs
	}

	s.Logger.Info("segment.fallback", "table", t.Name, "reason", "no grouping column")
	n := &Normalizer{Logger: s.Logger, Now: s.Now}
	return []model.InvoiceRecord{n.Normalize(t, ShapeGeneric)}
}

// groupBy partitions rows by the distinct non-empty values of the key column,
// preserving first-appearance order, and builds one record per group.
func (s *Segmenter) groupBy(t tabular.Table, col int, key groupKey) []model.InvoiceRecord {
	var order []string
	groups := make(map[string][][]string)
	for _, row := range t.Rows {
		v := tabular.CellText(row, col)
		if v == "" {
			continue
		}
		if _, seen := groups[v]; !seen {
			order = append(order, v)
		}
		groups[v] = append(groups[v], row)
	}

	if len(order) == 0 {
		n := &Normalizer{Logger: s.Logger, Now: s.Now}
		return []model.InvoiceRecord{n.Normalize(t, ShapeGeneric)}
	}

	recs := make([]model.InvoiceRecord, 0, len(order))
	for i, v := range order {
		recs = append(recs, s.buildGroupRecord(t.Headers, groups[v], v, key, i+1))
	}
	return recs
}

// buildGroupRecord constructs one record from a row group and its pre-known
// key. A reused invoice number is carried through exactly; a client-keyed
// group gets a generated, ordinal-stamped number.
func (s *Segmenter) buildGroupRecord(headers []string, rows [][]string, keyValue string, key groupKey, ordinal int) model.InvoiceRecord {
	now := s.now()
	rec := model.NewRecord(now)
	rec.Business.Name = model.DefaultBusinessName

	switch key {
	case groupByClient:
		rec.Client.Name = keyValue
		rec.Header.Number = fmt.Sprintf("%s-%03d", model.GeneratedNumber(now), ordinal)
	case groupByInvoiceNumber:
		rec.Header.Number = keyValue
	}

	// Client contact columns, taken from the group's first row.
	if len(rows) > 0 {
		for i, h := range headers {
			lower := strings.ToLower(h)
			if !strings.Contains(lower, "client") {
				continue
			}
			switch {
			case strings.Contains(lower, "email"):
				rec.Client.Email = tabular.CellText(rows[0], i)
			case strings.Contains(lower, "address"):
				rec.Client.Address = tabular.CellText(rows[0], i)
			}
		}
	}

	rec.Items = ExtractLineItems(tabular.Table{Headers: headers, Rows: rows})
	return rec
}

func findClientColumn(headers []string) int {
	for i, h := range headers {
		lower := strings.ToLower(h)
		if strings.Contains(lower, "client") || strings.Contains(lower, "customer") {
			return i
		}
	}
	return -1
}

func findInvoiceNumberColumn(headers []string) int {
	for i, h := range headers {
		lower := strings.ToLower(h)
		if !strings.Contains(lower, "invoice") {
			continue
		}
		if strings.Contains(lower, "number") || strings.Contains(lower, "num") || strings.Contains(lower, "#") {
			return i
		}
	}
	return -1
}

package normalize

import (
	"log/slog"
	"strings"
	"time"

	"invoicepipe/internal/model"
	"invoicepipe/internal/tabular"
)

// GenericImportNotes is the notes placeholder for records recovered from an
// unrecognized table shape.
const GenericImportNotes = "Imported from uploaded file"

// Labeled key phrases recognized by the structured-shape scan, and the field
// each one's following token populates.
var structuredLabels = []struct {
	phrase string
	assign func(*model.InvoiceRecord, string)
}{
	{"business name", func(r *model.InvoiceRecord, v string) { r.Business.Name = v }},
	{"business email", func(r *model.InvoiceRecord, v string) { r.Business.Email = v }},
	{"business phone", func(r *model.InvoiceRecord, v string) { r.Business.Phone = v }},
	{"client name", func(r *model.InvoiceRecord, v string) { r.Client.Name = v }},
	{"client email", func(r *model.InvoiceRecord, v string) { r.Client.Email = v }},
	{"invoice number", func(r *model.InvoiceRecord, v string) { r.Header.Number = v }},
}

// Normalizer turns one classified table into one canonical invoice record.
// It is stateless per call; Now is injectable for deterministic generated
// invoice numbers and dates.
type Normalizer struct {
	Logger *slog.Logger
	Now    func() time.Time
}

func NewNormalizer(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{Logger: logger, Now: time.Now}
}

func (n *Normalizer) now() time.Time {
	if n.Now != nil {
		return n.Now()
	}
	return time.Now()
}

// Normalize applies the shape-specific parsing strategy and the uniform
// defaulting rules.
func (n *Normalizer) Normalize(t tabular.Table, shape Shape) model.InvoiceRecord {
	var rec model.InvoiceRecord
	switch shape {
	case ShapeStructured:
		rec = n.parseStructured(t)
	case ShapeLineItemsOnly:
		rec = n.parseLineItemsOnly(t)
	default:
		rec = n.parseGeneric(t)
	}
	n.Logger.Debug("normalize.ok",
		"table", t.Name,
		"shape", shape.String(),
		"items", len(rec.Items),
	)
	return rec
}

// parseStructured scans adjacent token pairs in row-major flattening order:
// when a token contains a labeled key phrase, the next non-empty token is
// taken as that field's value. The scan assumes label and value are adjacent
// once the table is flattened.
func (n *Normalizer) parseStructured(t tabular.Table) model.InvoiceRecord {
	rec := model.NewRecord(n.now())

	tokens := flattenTokens(t)
	for i, tok := range tokens {
		if i+1 >= len(tokens) {
			break
		}
		lower := strings.ToLower(tok)
		for _, lbl := range structuredLabels {
			if strings.Contains(lower, lbl.phrase) {
				lbl.assign(&rec, tokens[i+1])
				break
			}
		}
	}

	rec.Items = ExtractLineItems(t)
	return rec
}

func (n *Normalizer) parseLineItemsOnly(t tabular.Table) model.InvoiceRecord {
	rec := model.NewRecord(n.now())
	rec.Business.Name = model.DefaultBusinessName
	rec.Items = ExtractLineItems(t)
	return rec
}

// parseGeneric is the last-resort strategy: extract what looks like line
// items, and when nothing qualifies, synthesize a single item from the first
// data row so the record is never silently useless.
func (n *Normalizer) parseGeneric(t tabular.Table) model.InvoiceRecord {
	rec := model.NewRecord(n.now())
	rec.Business.Name = model.DefaultBusinessName
	rec.Notes = GenericImportNotes

	rec.Items = ExtractLineItems(t)
	if len(rec.Items) == 0 && len(t.Rows) > 0 {
		first := t.Rows[0]
		desc := tabular.CellText(first, 0)
		if desc == "" {
			desc = "Service"
		}
		rate := 0.0
		if v, ok := tabular.ParseNumber(tabular.CellText(first, 1)); ok && v >= 0 {
			rate = v
		}
		rec.Items = []model.LineItem{{Description: desc, Quantity: 1, Rate: rate}}
	}
	return rec
}

// ExtractLineItems is the shared line-item helper. Per row: rows that are
// entirely blank are skipped; quantity and rate that are missing, unparsable
// or negative fall back to 1 and 0 respectively; a row is kept only when it
// has a description or a positive rate.
func ExtractLineItems(t tabular.Table) []model.LineItem {
	binding := MapColumns(t.Headers)

	items := make([]model.LineItem, 0, len(t.Rows))
	for _, row := range t.Rows {
		if tabular.IsEmptyRow(row) {
			continue
		}

		item := model.LineItem{Quantity: 1}
		item.Description = tabular.CellText(row, binding.Description)
		if v, ok := tabular.ParseNumber(tabular.CellText(row, binding.Quantity)); ok && v >= 0 {
			item.Quantity = v
		}
		if v, ok := tabular.ParseNumber(tabular.CellText(row, binding.Rate)); ok && v >= 0 {
			item.Rate = v
		}

		if item.Description != "" || item.Rate > 0 {
			items = append(items, item)
		}
	}
	return items
}

// flattenTokens flattens all non-empty cells into an ordered token sequence:
// header row first, then data rows, row-major.
func flattenTokens(t tabular.Table) []string {
	var tokens []string
	appendRow := func(row []string) {
		for _, cell := range row {
			if s := strings.TrimSpace(cell); s != "" {
				tokens = append(tokens, s)
			}
		}
	}
	appendRow(t.Headers)
	for _, row := range t.Rows {
		appendRow(row)
	}
	return tokens
}

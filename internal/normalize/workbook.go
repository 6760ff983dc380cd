package normalize

import (
	"strings"

	"invoicepipe/internal/model"
	"invoicepipe/internal/tabular"
)

// Sheet-name hints for multi-sheet workbooks that split invoice metadata and
// line items across dedicated sheets.
var (
	infoSheetHints  = []string{"info", "details", "header", "main"}
	itemsSheetHints = []string{"items", "lines", "products", "services"}
)

// NormalizeWorkbook handles a decoded file that may carry several sheets.
// When a recognizable info sheet and items sheet both exist they are parsed
// separately and merged; otherwise the first sheet goes through the regular
// classify-then-normalize path.
func (n *Normalizer) NormalizeWorkbook(tables []tabular.Table) model.InvoiceRecord {
	if len(tables) == 0 {
		return model.NewRecord(n.now())
	}

	if len(tables) > 1 {
		info := findSheet(tables, infoSheetHints)
		items := findSheet(tables, itemsSheetHints)
		if info != nil && items != nil {
			n.Logger.Debug("normalize.workbook.split_sheets",
				"info", info.Name, "items", items.Name)
			rec := n.parseInfoSheet(*info)
			rec.Items = ExtractLineItems(*items)
			return rec
		}
	}

	t := tables[0]
	return n.Normalize(t, Classify(t))
}

// parseInfoSheet reads a two-column key/value sheet into the record's
// business, client, invoice and tax fields. Unrecognized keys are ignored.
func (n *Normalizer) parseInfoSheet(t tabular.Table) model.InvoiceRecord {
	rec := model.NewRecord(n.now())

	for _, row := range t.Rows {
		if len(row) < 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(row[0]))
		value := strings.TrimSpace(row[1])
		if key == "" || value == "" {
			continue
		}

		switch {
		case strings.Contains(key, "business") && strings.Contains(key, "name"):
			rec.Business.Name = value
		case strings.Contains(key, "business") && strings.Contains(key, "email"):
			rec.Business.Email = value
		case strings.Contains(key, "business") && strings.Contains(key, "phone"):
			rec.Business.Phone = value
		case strings.Contains(key, "client") && strings.Contains(key, "name"):
			rec.Client.Name = value
		case strings.Contains(key, "client") && strings.Contains(key, "email"):
			rec.Client.Email = value
		case strings.Contains(key, "invoice") && strings.Contains(key, "number"):
			rec.Header.Number = value
		case strings.Contains(key, "tax"):
			if v, ok := tabular.ParseNumber(value); ok && v >= 0 {
				rec.TaxRate = v
			}
		}
	}
	return rec
}

func findSheet(tables []tabular.Table, hints []string) *tabular.Table {
	for i := range tables {
		lower := strings.ToLower(tables[i].Name)
		for _, hint := range hints {
			if strings.Contains(lower, hint) {
				return &tables[i]
			}
		}
	}
	return nil
}

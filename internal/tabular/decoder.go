package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"invoicepipe/constants"
	"invoicepipe/internal/common"
)

// Decode reads raw spreadsheet bytes into one or more named tables. The
// declared filename decides the codec; an extension outside the supported set
// is fatal for the request and names the offending extension.
func Decode(name string, r io.Reader) ([]Table, error) {
	ext := constants.NormalizeExt(filepath.Ext(name))
	if _, ok := constants.TabularExtensions[ext]; !ok {
		return nil, common.UnsupportedFormatError(ext)
	}
	switch ext {
	case "csv":
		t, err := decodeCSV(r)
		if err != nil {
			return nil, fmt.Errorf("decode csv: %w", err)
		}
		return []Table{t}, nil
	default:
		tables, err := decodeWorkbook(r)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", ext, err)
		}
		return tables, nil
	}
}

func decodeCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, err
	}
	if len(records) == 0 {
		return Table{Name: "csv"}, nil
	}
	return Table{
		Name:    "csv",
		Headers: records[0],
		Rows:    records[1:],
	}, nil
}

func decodeWorkbook(r io.Reader) ([]Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var tables []Table
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
		t := Table{Name: sheet}
		if len(rows) > 0 {
			t.Headers = rows[0]
			t.Rows = rows[1:]
		}
		tables = append(tables, t)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return tables, nil
}

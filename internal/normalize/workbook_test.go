package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"invoicepipe/internal/tabular"
)

func TestNormalizeWorkbookSplitSheets(t *testing.T) {
	tables := []tabular.Table{
		{
			Name:    "Invoice Info",
			Headers: []string{"Field", "Value"},
			Rows: [][]string{
				{"Business Name", "Acme LLC"},
				{"Client Name", "Globex"},
				{"Invoice Number", "INV-77"},
				{"Tax Rate", "8.25"},
			},
		},
		{
			Name:    "Line Items",
			Headers: []string{"Description", "Quantity", "Rate"},
			Rows: [][]string{
				{"Design", "2", "100"},
				{"Hosting", "1", "25"},
			},
		},
	}

	rec := testNormalizer().NormalizeWorkbook(tables)

	require.Equal(t, "Acme LLC", rec.Business.Name)
	require.Equal(t, "Globex", rec.Client.Name)
	require.Equal(t, "INV-77", rec.Header.Number)
	require.Equal(t, 8.25, rec.TaxRate)
	require.Len(t, rec.Items, 2)
}

func TestNormalizeWorkbookSingleSheet(t *testing.T) {
	tables := []tabular.Table{
		{
			Name:    "Sheet1",
			Headers: []string{"Item", "Qty", "Price"},
			Rows:    [][]string{{"Design", "2", "100"}},
		},
	}

	rec := testNormalizer().NormalizeWorkbook(tables)

	// classified line-items, not split-sheet parsed
	require.Len(t, rec.Items, 1)
	require.Equal(t, "Design", rec.Items[0].Description)
}

func TestNormalizeWorkbookEmpty(t *testing.T) {
	rec := testNormalizer().NormalizeWorkbook(nil)
	require.Equal(t, "INV-20240315", rec.Header.Number)
	require.Empty(t, rec.Items)
}

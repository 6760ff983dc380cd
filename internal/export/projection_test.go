package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"invoicepipe/internal/model"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestSummaryRows(t *testing.T) {
	fields := model.DocumentFields{
		VendorName:    "Acme",
		VendorEmail:   "billing@acme.test",
		InvoiceNumber: "INV-2024-001",
		TotalAmount:   "1500.00",
	}

	rows := SummaryRows(fields, fixedNow)

	require.Equal(t, [2]string{"Date Processed", "2024-03-15 10:30:00"}, rows[0])
	require.Contains(t, rows, [2]string{"Vendor Name", "Acme"})
	require.Contains(t, rows, [2]string{"Invoice Number", "INV-2024-001"})
	require.Contains(t, rows, [2]string{"Total Amount", "1500.00"})
	require.Contains(t, rows, [2]string{"Currency", "USD"})
	// deterministic: same input, same rows
	require.Equal(t, rows, SummaryRows(fields, fixedNow))
}

func TestRecordSummaryRows(t *testing.T) {
	rec := model.NewRecord(fixedNow)
	rec.Business.Name = "Acme"
	rec.TaxRate = 8.25

	rows := RecordSummaryRows(rec)

	require.Contains(t, rows, [2]string{"Business Name", "Acme"})
	require.Contains(t, rows, [2]string{"Client Name", "Client"})
	require.Contains(t, rows, [2]string{"Invoice Number", "INV-20240315"})
	require.Contains(t, rows, [2]string{"Tax Rate (%)", "8.25"})
}

func TestItemRows(t *testing.T) {
	items := []model.LineItem{
		{Description: "Design", Quantity: 2, Rate: 100},
		{Description: "Hosting", Quantity: 1, Rate: 25.5},
	}

	rows := ItemRows(items)

	require.Len(t, rows, 3)
	require.Equal(t, []string{"Description", "Quantity", "Rate", "Amount"}, rows[0])
	require.Equal(t, []string{"Design", "2", "100.00", "200.00"}, rows[1])
	require.Equal(t, []string{"Hosting", "1", "25.50", "25.50"}, rows[2])
}

func TestItemRowsEmpty(t *testing.T) {
	rows := ItemRows(nil)
	require.Len(t, rows, 1)
}

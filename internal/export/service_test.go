package export

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"invoicepipe/internal/model"
)

func testService() *Service {
	s := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Now = func() time.Time { return fixedNow }
	return s
}

func TestWriteDocumentXLSX(t *testing.T) {
	fields := model.DocumentFields{
		VendorName:    "Acme",
		InvoiceNumber: "INV-2024-001",
		TotalAmount:   "1500.00",
		LineItems: []model.LineItem{
			{Description: "Design", Quantity: 2, Rate: 100},
		},
	}

	b, err := testService().WriteDocumentXLSX(fields)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	require.ElementsMatch(t, []string{"Invoice Info", "Line Items"}, f.GetSheetList())

	v, err := f.GetCellValue("Invoice Info", "B2")
	require.NoError(t, err)
	require.Equal(t, "Acme", v)

	v, err = f.GetCellValue("Line Items", "A2")
	require.NoError(t, err)
	require.Equal(t, "Design", v)

	v, err = f.GetCellValue("Line Items", "D2")
	require.NoError(t, err)
	require.Equal(t, "200.00", v)
}

func TestWriteRecordXLSX(t *testing.T) {
	rec := model.NewRecord(fixedNow)
	rec.Business.Name = "Acme"
	rec.Items = []model.LineItem{{Description: "Hosting", Quantity: 1, Rate: 25.5}}

	b, err := testService().WriteRecordXLSX(rec)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	v, err := f.GetCellValue("Invoice Info", "B1")
	require.NoError(t, err)
	require.Equal(t, "Acme", v)

	v, err = f.GetCellValue("Invoice Info", "B8")
	require.NoError(t, err)
	require.Equal(t, "INV-20240315", v)
}

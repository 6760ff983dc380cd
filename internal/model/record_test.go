package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestNewRecordDefaults(t *testing.T) {
	rec := NewRecord(fixedNow)

	require.Equal(t, DefaultClientName, rec.Client.Name)
	require.Equal(t, "INV-20240315", rec.Header.Number)
	require.Equal(t, "2024-03-15", rec.Header.Date)
	require.Equal(t, DefaultCurrency, rec.Header.Currency)
	require.NotNil(t, rec.Items)
	require.Empty(t, rec.Items)
}

func TestLineItemAmountAndTotal(t *testing.T) {
	rec := NewRecord(fixedNow)
	rec.Items = []LineItem{
		{Description: "Design", Quantity: 2, Rate: 100},
		{Description: "Hosting", Quantity: 1, Rate: 25.5},
	}

	require.Equal(t, 200.0, rec.Items[0].Amount())
	require.InDelta(t, 225.5, rec.Total(), 1e-9)
}

func TestEmptyDocumentFields(t *testing.T) {
	doc := EmptyDocumentFields("no text could be extracted from the document")

	require.NotEmpty(t, doc.Error)
	require.Empty(t, doc.VendorName)
	require.Empty(t, doc.TotalAmount)
	require.NotNil(t, doc.LineItems)
	require.Empty(t, doc.LineItems)
}

func TestDocumentFieldsToRecord(t *testing.T) {
	doc := DocumentFields{
		VendorName:    "Acme",
		InvoiceNumber: "INV-9",
		InvoiceDate:   "2024-01-31",
		DueDate:       "2024-02-29",
		LineItems: []LineItem{
			{Description: "Design", Quantity: -2, Rate: -5},
		},
	}

	rec := doc.ToRecord(fixedNow)

	require.Equal(t, "Acme", rec.Business.Name)
	require.Equal(t, "INV-9", rec.Header.Number)
	require.Equal(t, "2024-01-31", rec.Header.Date)
	require.Equal(t, "2024-02-29", rec.Header.DueDate)
	require.Len(t, rec.Items, 1)
	require.Equal(t, LineItem{Description: "Design", Quantity: 1, Rate: 0}, rec.Items[0])
}

func TestDocumentFieldsToRecordKeepsGeneratedDefaults(t *testing.T) {
	rec := DocumentFields{}.ToRecord(fixedNow)

	require.Equal(t, "INV-20240315", rec.Header.Number)
	require.Equal(t, "2024-03-15", rec.Header.Date)
	require.Empty(t, rec.Items)
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleInvoiceText = "ACME Corp\n123 St\ncontact@acme.com\n\nINVOICE\nInvoice Number: INV-2024-001\nTotal: $1,500.00"

func TestPatternFields(t *testing.T) {
	fields := PatternFields(sampleInvoiceText)

	require.Equal(t, "ACME Corp", fields.VendorName)
	require.Equal(t, "contact@acme.com", fields.VendorEmail)
	require.Equal(t, "INV-2024-001", fields.InvoiceNumber)
	require.Equal(t, "1500.00", fields.TotalAmount)
	require.NotNil(t, fields.LineItems)
	require.Empty(t, fields.LineItems)
	require.Empty(t, fields.Error)
}

func TestPatternFieldsInvoiceNumberPriority(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"hash form", "Invoice # 12345\nInvoice Number: OTHER", "12345"},
		{"hash with colon", "invoice #: A-77", "A-77"},
		{"inv abbreviation", "INV# 2024-9", "2024-9"},
		{"number label", "Invoice Number: INV-1", "INV-1"},
		{"no match", "nothing here", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, PatternFields(tc.text).InvoiceNumber)
		})
	}
}

func TestPatternFieldsTotalAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"total label", "Total: 250.00", "250.00"},
		{"total with currency", "TOTAL $99", "99"},
		{"amount due fallback", "Amount Due: $1,250.50", "1250.50"},
		{"total outranks amount due", "Amount Due: 10.00\nTotal: 20.00", "20.00"},
		{"no match", "no money here", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, PatternFields(tc.text).TotalAmount)
		})
	}
}

func TestPatternFieldsVendorNameScan(t *testing.T) {
	// Email-looking and too-short lines are skipped.
	fields := PatternFields("ab\nx@y.io\n  Initech Ltd  \n")
	require.Equal(t, "Initech Ltd", fields.VendorName)

	// The scan gives up past the first few lines.
	fields = PatternFields("\n\n\n\n\nDeep Vendor Inc\n")
	require.Empty(t, fields.VendorName)
}

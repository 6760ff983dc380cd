package export

import (
	"fmt"
	"time"

	"invoicepipe/internal/model"
)

// The projections below are deterministic: same record in, same rows out.
// All interpretation happened upstream.

// SummaryRows flattens a document record to the two-column key/value summary.
func SummaryRows(f model.DocumentFields, now time.Time) [][2]string {
	return [][2]string{
		{"Date Processed", now.Format("2006-01-02 15:04:05")},
		{"Vendor Name", f.VendorName},
		{"Vendor Address", f.VendorAddress},
		{"Vendor Email", f.VendorEmail},
		{"Vendor Phone", f.VendorPhone},
		{"Invoice Number", f.InvoiceNumber},
		{"Invoice Date", f.InvoiceDate},
		{"Due Date", f.DueDate},
		{"Total Amount", f.TotalAmount},
		{"Currency", model.DefaultCurrency},
	}
}

// RecordSummaryRows flattens a canonical invoice record the same way.
func RecordSummaryRows(r model.InvoiceRecord) [][2]string {
	return [][2]string{
		{"Business Name", r.Business.Name},
		{"Business Address", r.Business.Address},
		{"Business Email", r.Business.Email},
		{"Business Phone", r.Business.Phone},
		{"Client Name", r.Client.Name},
		{"Client Address", r.Client.Address},
		{"Client Email", r.Client.Email},
		{"Invoice Number", r.Header.Number},
		{"Invoice Date", r.Header.Date},
		{"Due Date", r.Header.DueDate},
		{"Currency", r.Header.Currency},
		{"Tax Rate (%)", fmt.Sprintf("%g", r.TaxRate)},
		{"Notes", r.Notes},
	}
}

// ItemRows projects line items to a tabular export, header row included.
// Amount is derived on the way out, never read from storage.
func ItemRows(items []model.LineItem) [][]string {
	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, []string{"Description", "Quantity", "Rate", "Amount"})
	for _, it := range items {
		rows = append(rows, []string{
			it.Description,
			fmt.Sprintf("%g", it.Quantity),
			fmt.Sprintf("%.2f", it.Rate),
			fmt.Sprintf("%.2f", it.Amount()),
		})
	}
	return rows
}

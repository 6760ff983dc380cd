package model

import "time"

// DocumentFields is the flattened record produced by free-text extraction
// (OCR'd or layout-extracted documents). Every field is always present;
// Error is the terminal-failure marker and stays empty on success.
type DocumentFields struct {
	VendorName    string     `json:"vendor_name"`
	VendorAddress string     `json:"vendor_address"`
	VendorEmail   string     `json:"vendor_email"`
	VendorPhone   string     `json:"vendor_phone"`
	InvoiceNumber string     `json:"invoice_number"`
	InvoiceDate   string     `json:"invoice_date"`
	DueDate       string     `json:"due_date"`
	TotalAmount   string     `json:"total_amount"`
	LineItems     []LineItem `json:"line_items"`
	Error         string     `json:"error,omitempty"`
}

// EmptyDocumentFields returns the terminal record for a total extraction
// failure: every field empty, an explicit error marker set.
func EmptyDocumentFields(reason string) DocumentFields {
	return DocumentFields{
		LineItems: []LineItem{},
		Error:     reason,
	}
}

// ToRecord lifts the flattened document fields into the canonical invoice
// record so a document can flow through the same export and render paths as
// a normalized table.
func (f DocumentFields) ToRecord(now time.Time) InvoiceRecord {
	rec := NewRecord(now)
	rec.Business = Business{
		Name:    f.VendorName,
		Address: f.VendorAddress,
		Email:   f.VendorEmail,
		Phone:   f.VendorPhone,
	}
	if f.InvoiceNumber != "" {
		rec.Header.Number = f.InvoiceNumber
	}
	if f.InvoiceDate != "" {
		rec.Header.Date = f.InvoiceDate
	}
	rec.Header.DueDate = f.DueDate
	if len(f.LineItems) > 0 {
		items := make([]LineItem, 0, len(f.LineItems))
		for _, it := range f.LineItems {
			if it.Quantity < 0 {
				it.Quantity = 1
			}
			if it.Rate < 0 {
				it.Rate = 0
			}
			items = append(items, it)
		}
		rec.Items = items
	}
	return rec
}

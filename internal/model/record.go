package model

import "time"

// Business identifies the invoicing party. All fields optional.
type Business struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// Client identifies the billed party.
type Client struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// Header holds the invoice-level fields.
type Header struct {
	Number   string `json:"number"`
	Date     string `json:"date"`     // YYYY-MM-DD
	DueDate  string `json:"due_date"` // YYYY-MM-DD
	Currency string `json:"currency"` // ISO 4217
}

// LineItem is one billed row. Amount is derived, never stored.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

// Amount returns quantity x rate.
func (li LineItem) Amount() float64 {
	return li.Quantity * li.Rate
}

// InvoiceRecord is the canonical shape every normalization path converges to.
// All five groups are always present; fields carry defined defaults instead of
// being omitted, so consumers never branch on key existence.
type InvoiceRecord struct {
	Business Business   `json:"business"`
	Client   Client     `json:"client"`
	Header   Header     `json:"invoice"`
	Items    []LineItem `json:"items"`
	Notes    string     `json:"notes"`
	TaxRate  float64    `json:"tax_rate"` // percent units, e.g. 8.25
}

const (
	DefaultCurrency     = "USD"
	DefaultClientName   = "Client"
	DefaultBusinessName = "Your Business"
)

// GeneratedNumber derives a fallback invoice number from the given date.
func GeneratedNumber(now time.Time) string {
	return "INV-" + now.Format("20060102")
}

// NewRecord returns a fully-defaulted record: placeholder client, generated
// invoice number, today's date, USD, zero items.
func NewRecord(now time.Time) InvoiceRecord {
	return InvoiceRecord{
		Client: Client{Name: DefaultClientName},
		Header: Header{
			Number:   GeneratedNumber(now),
			Date:     now.Format("2006-01-02"),
			Currency: DefaultCurrency,
		},
		Items: []LineItem{},
	}
}

// Total sums the derived amounts of all items.
func (r InvoiceRecord) Total() float64 {
	var sum float64
	for _, it := range r.Items {
		sum += it.Amount()
	}
	return sum
}

package extract

import (
	"regexp"
	"strings"

	"invoicepipe/internal/model"
)

// vendorNameScanLines bounds how deep into the document the vendor-name scan
// looks; real invoices put the letterhead in the first few lines.
const vendorNameScanLines = 5

var emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// Invoice-number patterns in fixed priority order: the first pattern that
// matches wins, even if a later one would capture something different.
var invoiceNumberRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)invoice\s*#\s*:?\s*([A-Z0-9-]+)`),
	regexp.MustCompile(`(?i)inv\s*#\s*:?\s*([A-Z0-9-]+)`),
	regexp.MustCompile(`(?i)invoice\s*number\s*:?\s*([A-Z0-9-]+)`),
}

var totalAmountRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)total\s*:?\s*\$?([0-9,]+\.?\d*)`),
	regexp.MustCompile(`(?i)amount\s*due\s*:?\s*\$?([0-9,]+\.?\d*)`),
}

// PatternFields is the deterministic, always-available extraction strategy:
// regex-driven field recognition over raw text. It never invents line items
// and never fails; unmatched fields stay empty.
func PatternFields(text string) model.DocumentFields {
	fields := model.DocumentFields{LineItems: []model.LineItem{}}

	if m := emailRe.FindString(text); m != "" {
		fields.VendorEmail = m
	}

	for _, re := range invoiceNumberRes {
		if m := re.FindStringSubmatch(text); m != nil {
			fields.InvoiceNumber = m[1]
			break
		}
	}

	for _, re := range totalAmountRes {
		if m := re.FindStringSubmatch(text); m != nil {
			fields.TotalAmount = strings.ReplaceAll(m[1], ",", "")
			break
		}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i >= vendorNameScanLines {
			break
		}
		line = strings.TrimSpace(line)
		if len(line) > 2 && !strings.Contains(line, "@") {
			fields.VendorName = line
			break
		}
	}

	return fields
}

package llm

import "strings"

// BuildSystemPrompt states the contract: JSON only, fixed shape, no prose.
func BuildSystemPrompt(req ExtractRequest) string {
	defCur := strings.TrimSpace(req.DefaultCurrency)
	if defCur == "" {
		defCur = "USD"
	}

	parts := []string{
		"You are an invoice parser. Return ONLY a JSON object that matches the provided JSON Schema.",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"Amounts are plain decimal strings without currency symbols or thousands separators; assume " + defCur + " when no currency is visible.",
		"If a field is not present in the text, use an empty string; for line_items use an empty array.",
		"Never output null and never wrap the JSON in markdown fences.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the raw document text, truncated to
// MaxPromptTextLen characters.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	if f := strings.TrimSpace(req.FilenameHint); f != "" {
		b.WriteString("Filename: ")
		b.WriteString(f)
		b.WriteString("\n")
	}

	text := req.RawText
	b.WriteString("\nInvoice text (first ~2k chars):\n")
	if len(text) > MaxPromptTextLen {
		b.WriteString(text[:MaxPromptTextLen])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(text)
	}

	b.WriteString("\n\nReturn format:\n")
	b.WriteString(`{
  "vendor_name": "...",
  "vendor_address": "...",
  "vendor_email": "...",
  "vendor_phone": "...",
  "invoice_number": "...",
  "invoice_date": "...",
  "due_date": "...",
  "total_amount": "...",
  "line_items": [{"description": "...", "quantity": 1, "rate": 0}]
}`)
	return b.String()
}

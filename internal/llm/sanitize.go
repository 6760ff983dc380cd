package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// StripCodeFences removes an optional markdown fence wrapper (``` or
// ```json) around a model response. Models add these despite instructions;
// the content inside is treated as the real payload.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

// NormalizeAndSanitizeJSON
// - Drops null / empty-string optionals
// - Coerces numeric -> string for money-ish fields (total_amount)
// - Removes unknown keys (strict additionalProperties = false friendliness)
// - Trims obvious string fields
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)

	// 1) coerce money field to string
	if v, ok := m["total_amount"]; ok {
		switch t := v.(type) {
		case float64:
			m["total_amount"] = fmt.Sprintf("%.2f", t)
		case string:
			s := strings.TrimSpace(t)
			s = strings.ReplaceAll(s, ",", "")
			s = strings.TrimPrefix(s, "$")
			m["total_amount"] = s
		case nil:
			delete(m, "total_amount")
			dropped = append(dropped, "total_amount(null)")
		default:
			delete(m, "total_amount")
			dropped = append(dropped, "total_amount(type)")
		}
	}

	// 2) remove unknown keys
	allowed := map[string]struct{}{
		"vendor_name": {}, "vendor_address": {}, "vendor_email": {}, "vendor_phone": {},
		"invoice_number": {}, "invoice_date": {}, "due_date": {}, "total_amount": {},
		"line_items": {},
	}
	for k := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	// 3) drop nulls, trim strings
	for _, k := range []string{
		"vendor_name", "vendor_address", "vendor_email", "vendor_phone",
		"invoice_number", "invoice_date", "due_date",
	} {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			m[k] = strings.TrimSpace(t)
		case nil:
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		default:
			delete(m, k)
			dropped = append(dropped, k+"(type)")
		}
	}

	// 4) line_items must be an array of objects; anything else is dropped
	if v, ok := m["line_items"]; ok {
		if _, isArr := v.([]any); !isArr {
			delete(m, "line_items")
			dropped = append(dropped, "line_items(type)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

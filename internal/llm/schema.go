package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We send it to the model as a structured-output constraint and
// use it locally to reject malformed responses.
func BuildInvoiceJSONSchema() map[string]any {
	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"description": map[string]any{"type": "string"},
			"quantity":    map[string]any{"type": "number", "minimum": 0.0},
			"rate":        map[string]any{"type": "number", "minimum": 0.0},
		},
	}
	props := map[string]any{
		"vendor_name":    map[string]any{"type": "string"},
		"vendor_address": map[string]any{"type": "string"},
		"vendor_email":   map[string]any{"type": "string"},
		"vendor_phone":   map[string]any{"type": "string"},
		"invoice_number": map[string]any{"type": "string"},
		"invoice_date":   map[string]any{"type": "string"},
		"due_date":       map[string]any{"type": "string"},
		"total_amount":   map[string]any{"type": "string"},
		"line_items":     map[string]any{"type": "array", "items": item},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compileSchema compiles the invoice schema exactly once; the compiled form
// is shared safely across concurrent callers.
func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := json.Marshal(BuildInvoiceJSONSchema())
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("invoice.schema.json", bytes.NewReader(raw)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("invoice.schema.json")
	})
	return compiledSchema, schemaErr
}

// ValidateJSONAgainstSchema checks a candidate document against the invoice
// schema. Any violation is a strategy failure, never partial data.
func ValidateJSONAgainstSchema(doc []byte) error {
	s, err := compileSchema()
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("decode candidate: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"invoicepipe/internal/llm"
	"invoicepipe/internal/model"
)

// ExtractFields implements llm.FieldExtractor using text-only chat/completions.
// Every failure mode (transport, decode, fences, schema) comes back as an
// error for the orchestrator to absorb; this method never panics or blocks
// past the client timeout / ctx deadline.
func (c *Client) ExtractFields(ctx context.Context, req llm.ExtractRequest) (model.DocumentFields, []byte, error) {
	if !c.Configured() {
		return model.DocumentFields{}, nil, fmt.Errorf("openai client not configured")
	}

	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.RawText),
	)

	sys := llm.BuildSystemPrompt(req)
	user := llm.BuildUserPrompt(req)
	schema := llm.BuildInvoiceJSONSchema()

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return model.DocumentFields{}, nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return model.DocumentFields{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return model.DocumentFields{}, raw, fmt.Errorf("no choices in openai response")
	}

	content := llm.StripCodeFences(cc.Choices[0].Message.Content)
	rawContent := []byte(content)

	cleaned, _, err := llm.NormalizeAndSanitizeJSON(rawContent, c.logger)
	if err != nil {
		c.logger.Error("llm.extract.sanitize_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return model.DocumentFields{}, rawContent, fmt.Errorf("sanitize response: %w", err)
	}
	if err := llm.ValidateJSONAgainstSchema(cleaned); err != nil {
		c.logger.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(rawContent),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return model.DocumentFields{}, rawContent, fmt.Errorf("schema validation failed: %w", err)
	}

	var out model.DocumentFields
	if err := json.Unmarshal(cleaned, &out); err != nil {
		return model.DocumentFields{}, cleaned, fmt.Errorf("unmarshal fields: %w", err)
	}
	if out.LineItems == nil {
		out.LineItems = []model.LineItem{}
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"vendor", out.VendorName,
		"invoice_number", out.InvoiceNumber,
		"total", out.TotalAmount,
		"line_items", len(out.LineItems),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, cleaned, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.logger.Warn("openai response body close error", "error", cerr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

package llm

import (
	"context"

	"invoicepipe/internal/model"
)

// MaxPromptTextLen caps how much raw document text is submitted for
// structuring. The first 2000 characters carry the header block where vendor,
// invoice number and totals live.
const MaxPromptTextLen = 2000

// ExtractRequest carries one document's raw text plus hints into the
// generative structuring collaborator.
type ExtractRequest struct {
	RawText         string
	FilenameHint    string
	DefaultCurrency string
}

// FieldExtractor is the generative-structuring contract the extraction
// orchestrator depends on. Implementations return the parsed fields plus the
// raw JSON they were decoded from; any error means the strategy failed and
// the caller falls through to the next one.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (model.DocumentFields, []byte /*rawJSON*/, error)
}

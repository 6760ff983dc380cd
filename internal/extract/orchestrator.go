package extract

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"invoicepipe/constants"
	"invoicepipe/internal/common"
	"invoicepipe/internal/llm"
	"invoicepipe/internal/model"
)

// Orchestrator runs the per-document strategy chain:
//
//	Start -> TryGenerative (if configured)
//	      -> [success: Done | failure: TryPattern]
//	      -> [text empty: ErrorRecord | else: PatternRecord -> Done]
//
// One pass, no retries. Strategy-internal failures are absorbed and converted
// to fallthrough; only unsupported input and I/O problems reach the caller.
type Orchestrator struct {
	logger *slog.Logger
	text   TextExtractor      // OCR / text-layer collaborator
	fields llm.FieldExtractor // optional generative collaborator; nil = unavailable
}

func NewOrchestrator(logger *slog.Logger, text TextExtractor, fields llm.FieldExtractor) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{logger: logger, text: text, fields: fields}
}

// ExtractFile runs text extraction for a document on disk and then the field
// strategy chain. Only an unsupported extension or a collaborator I/O failure
// returns an error; exhausted strategies yield the terminal error record.
func (o *Orchestrator) ExtractFile(ctx context.Context, path string) (model.DocumentFields, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	if _, ok := constants.DocumentExtensions[ext]; !ok {
		return model.DocumentFields{}, common.UnsupportedFormatError(ext)
	}
	if o.text == nil {
		return model.DocumentFields{}, common.NewAppError("OCR_UNAVAILABLE", "no text extractor configured", common.ErrUnavailable)
	}

	res, err := o.text.Extract(ctx, path)
	if err != nil {
		return model.DocumentFields{}, common.WrapError(err, "extract text from "+filepath.Base(path))
	}
	o.logger.Info("extract.text.ok",
		"file", filepath.Base(path),
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"elapsed_ms", res.Duration.Milliseconds(),
	)

	return o.ExtractText(ctx, res.Text, filepath.Base(path)), nil
}

// ExtractText runs the field strategy chain over already-extracted text.
// It always succeeds: the worst case is the terminal error record.
func (o *Orchestrator) ExtractText(ctx context.Context, raw, filenameHint string) model.DocumentFields {
	start := time.Now()

	if strings.TrimSpace(raw) == "" {
		o.logger.Warn("extract.chain.empty_text", "file", filenameHint, "strategy", StrategyError)
		return model.EmptyDocumentFields("no text could be extracted from the document")
	}

	if o.fields != nil {
		fields, _, err := o.fields.ExtractFields(ctx, llm.ExtractRequest{
			RawText:      raw,
			FilenameHint: filenameHint,
		})
		if err == nil {
			o.logger.Info("extract.chain.ok",
				"file", filenameHint,
				"strategy", StrategyGenerative,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return fields
		}
		// Collaborator failure is never fatal; fall through to patterns.
		o.logger.Warn("extract.generative.fallthrough", "file", filenameHint, "error", err)
	}

	fields := PatternFields(raw)
	o.logger.Info("extract.chain.ok",
		"file", filenameHint,
		"strategy", StrategyPattern,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fields
}

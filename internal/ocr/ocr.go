package ocr

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"invoicepipe/constants"
	"invoicepipe/internal/common"
	"invoicepipe/internal/extract"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit
}

// Extractor implements extract.TextExtractor over a fixed chain of engines
// per format. Engines are tried in order and the first non-empty text wins;
// results are never merged. The Extractor is immutable after construction and
// safe for concurrent use; build one per process and share it.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// Extract picks the engine chain based on file extension. Engine failures
// along the chain are demoted to warnings; only an unsupported extension is
// an error. Cancellation of ctx aborts the running engine and surfaces as an
// ordinary engine failure.
func (e *Extractor) Extract(ctx context.Context, path string) (extract.TextResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("ocr.extract.start", "path", path, "ext", ext)

	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, nil
	case constants.IMAGE:
		res := e.extractImage(ctx, path)
		res.Duration = time.Since(start)
		return res, nil
	default:
		e.logger.Error("ocr.extract.unsupported", "extension", ext)
		return extract.TextResult{}, common.UnsupportedFormatError(ext)
	}
}

// hasText reports whether an engine produced anything worth keeping.
func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

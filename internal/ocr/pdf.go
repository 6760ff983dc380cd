package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"invoicepipe/constants"
	"invoicepipe/internal/extract"
)

// extractPDF walks the engine chain for PDFs: embedded text layer first,
// then pdftotext, then rasterize + OCR for scanned documents. First engine
// that yields non-empty text wins.
func (e *Extractor) extractPDF(ctx context.Context, path string) extract.TextResult {
	res := extract.TextResult{SourceType: string(constants.PDF)}

	if text, pages, err := e.pdfTextLayer(path); err == nil && hasText(text) {
		res.Text, res.Pages, res.Method = text, pages, "pdf-layout"
		return res
	} else if err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("pdf-layout: %v", err))
	}

	if text, pages, warns, err := e.pdfToText(ctx, path); err == nil && hasText(text) {
		res.Text, res.Pages, res.Method = text, pages, "pdf-text"
		res.Warnings = append(res.Warnings, warns...)
		return res
	} else if err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("pdf-text: %v", err))
	}

	text, pages, warns, err := e.pdfToOCR(ctx, path)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		// Chain exhausted; empty text is the terminal outcome, not an error.
		res.Warnings = append(res.Warnings, fmt.Sprintf("pdf-ocr: %v", err))
		e.logger.Warn("ocr.pdf.exhausted", "path", path, "warnings", len(res.Warnings))
		return res
	}
	res.Text, res.Pages, res.Method = text, pages, "pdf-ocr"
	return res
}

// pdfTextLayer reads the embedded text layer in-process, no external binary.
func (e *Extractor) pdfTextLayer(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer func() {
		_ = f.Close()
	}()

	var b strings.Builder
	pages := r.NumPage()
	limit := pages
	if e.cfg.MaxPages > 0 && limit > e.cfg.MaxPages {
		limit = e.cfg.MaxPages
	}
	for i := 1; i <= limit; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", 0, fmt.Errorf("page %d: %w", i, err)
		}
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteByte(' ')
			}
			b.WriteByte('\n')
		}
	}
	return b.String(), pages, nil
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}
	text = string(out)
	// A form-feed \f is used as page separator by default
	pages = 1 + strings.Count(text, "\f")
	return text, pages, nil, nil
}

func (e *Extractor) pdfToOCR(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	tmpDir, err := os.MkdirTemp("", "ip-pp-*")
	if err != nil {
		return "", 0, nil, err
	}
	defer func(dir string) {
		if rerr := os.RemoveAll(dir); rerr != nil {
			e.logger.Warn("ocr.pdf.tmp_cleanup_failed", "dir", dir, "error", rerr)
		}
	}(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	var warns []string
	for _, img := range matches {
		txt, w, err := e.tesseractOCR(ctx, img)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(txt)
		warns = append(warns, w...)
	}
	pages = len(matches)
	return b.String(), pages, warns, nil
}

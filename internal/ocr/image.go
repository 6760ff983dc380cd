package ocr

import (
	"context"
	"fmt"

	"invoicepipe/constants"
	"invoicepipe/internal/extract"
)

// extractImage runs tesseract over a single image. Engine failure leaves the
// text empty; the orchestrator decides what that means.
func (e *Extractor) extractImage(ctx context.Context, path string) extract.TextResult {
	res := extract.TextResult{SourceType: string(constants.IMAGE), Pages: 1}

	txt, warns, err := e.tesseractOCR(ctx, path)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		res.Warnings = append(res.Warnings, err.Error())
		e.logger.Warn("ocr.image.failed", "path", path, "error", err)
		return res
	}
	res.Text = txt
	res.Method = "image-ocr"
	return res
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, path, "stdout", "-l", e.cfg.TesseractLang)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}

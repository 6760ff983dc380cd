package ocr

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"
)

// Runner abstracts the external OCR binaries so engine chains can be tested
// without pdftotext or tesseract installed.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// execRunner shells out through exec.CommandContext; cancelling ctx kills the
// binary and surfaces as an ordinary command failure.
type execRunner struct {
	logger *slog.Logger
}

func (r execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()

	if err != nil {
		r.logger.Error("ocr.exec.failed",
			"bin", name,
			"args", args,
			"elapsed_ms", time.Since(start).Milliseconds(),
			"error", err,
			"stderr", truncate(errb.String(), 8<<10), // cap at 8KB
		)
		return out.Bytes(), errb.Bytes(), err
	}

	r.logger.Debug("ocr.exec.ok",
		"bin", name,
		"args", args,
		"elapsed_ms", time.Since(start).Milliseconds(),
		"stdout_bytes", out.Len(),
		"stderr_bytes", errb.Len(),
	)
	return out.Bytes(), errb.Bytes(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}

package extract

import (
	"context"
	"time"
)

// TextExtractor is the text-from-document collaborator: file on disk ->
// best-effort plain text. An empty Text with a nil error is a legitimate
// outcome (e.g. a blank scan); the orchestrator turns it into the terminal
// error record.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextResult, error)
}

type TextResult struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE
	Method     string // "pdf-layout" | "pdf-text" | "pdf-ocr" | "image-ocr"
	Duration   time.Duration
	Warnings   []string
}

// Strategy labels recorded in logs for each extraction pass.
const (
	StrategyGenerative = "generative"
	StrategyPattern    = "pattern"
	StrategyError      = "error-record"
)

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"invoicepipe/internal/common"
	"invoicepipe/internal/export"
	"invoicepipe/internal/extract"
	"invoicepipe/internal/llm"
	"invoicepipe/internal/llm/openai"
	"invoicepipe/internal/ocr"
)

var documentCmd = &cobra.Command{
	Use:   "document <file>",
	Short: "Extract invoice fields from a PDF or image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()
		cfg := common.LoadConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}

		text := ocr.NewExtractor(ocr.Config{
			Pdftotext:     cfg.OCR.Pdftotext,
			Pdftoppm:      cfg.OCR.Pdftoppm,
			Tesseract:     cfg.OCR.Tesseract,
			TesseractLang: cfg.OCR.TesseractLang,
			DPI:           cfg.OCR.DPI,
			MaxPages:      cfg.OCR.MaxPages,
		}, logger)

		// Without an API key the chain starts at the pattern strategy.
		var fields llm.FieldExtractor
		if cfg.LLM.APIKey != "" {
			fields = openai.NewClient(openai.Config{
				APIKey:      cfg.LLM.APIKey,
				BaseURL:     cfg.LLM.BaseURL,
				Model:       cfg.LLM.Model,
				Temperature: cfg.LLM.Temperature,
				Timeout:     cfg.LLM.Timeout,
			}, logger)
		}

		orch := extract.NewOrchestrator(logger, text, fields)
		doc, err := orch.ExtractFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if outputPath == "" || jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		}

		b, err := export.NewService(logger).WriteDocumentXLSX(doc)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outputPath, b, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}
		fmt.Fprintln(os.Stdout, outputPath)
		return nil
	},
}

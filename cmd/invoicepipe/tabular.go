package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"invoicepipe/internal/export"
	"invoicepipe/internal/model"
	"invoicepipe/internal/normalize"
	"invoicepipe/internal/tabular"
)

var bulkMode bool

var tabularCmd = &cobra.Command{
	Use:   "tabular <file>",
	Short: "Normalize a CSV or Excel file into canonical invoice records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		logger := slog.Default()

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer func() {
			_ = f.Close()
		}()

		tables, err := tabular.Decode(filepath.Base(path), f)
		if err != nil {
			return err
		}
		if len(tables) == 0 {
			return fmt.Errorf("%s: no tables found", filepath.Base(path))
		}

		if bulkMode {
			seg := normalize.NewSegmenter(logger)
			recs := seg.Segment(tables[0])
			return emitRecords(logger, recs)
		}

		n := normalize.NewNormalizer(logger)
		rec := n.NormalizeWorkbook(tables)
		return emitRecords(logger, []model.InvoiceRecord{rec})
	},
}

func init() {
	tabularCmd.Flags().BoolVar(&bulkMode, "bulk", false, "split a multi-invoice table into one record per group")
}

// emitRecords writes records as JSON to stdout or, with -o, as XLSX files.
// --json forces JSON even when an output path is set. Several records against
// one output path get an ordinal suffix each.
func emitRecords(logger *slog.Logger, recs []model.InvoiceRecord) error {
	if outputPath == "" || jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if len(recs) == 1 {
			return enc.Encode(recs[0])
		}
		return enc.Encode(recs)
	}

	svc := export.NewService(logger)
	for i, rec := range recs {
		path := outputPath
		if len(recs) > 1 {
			ext := filepath.Ext(path)
			path = fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(path, ext), i+1, ext)
		}
		b, err := svc.WriteRecordXLSX(rec)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintln(os.Stdout, path)
	}
	return nil
}

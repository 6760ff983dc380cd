package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"invoicepipe/internal/model"
)

const (
	infoSheet  = "Invoice Info"
	itemsSheet = "Line Items"
)

// Service turns extracted or normalized invoices into XLSX bytes.
type Service struct {
	logger *slog.Logger

	// Now is the clock used for the "Date Processed" row; overridable in tests.
	Now func() time.Time
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger, Now: time.Now}
}

// WriteDocumentXLSX renders document-extracted fields to a two-sheet workbook.
func (s *Service) WriteDocumentXLSX(fields model.DocumentFields) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	if err := writeSummarySheet(f, SummaryRows(fields, s.Now())); err != nil {
		return nil, err
	}
	if err := writeItemsSheet(f, ItemRows(fields.LineItems)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"kind", "document",
		"items", len(fields.LineItems),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// WriteRecordXLSX renders a canonical invoice record to the same layout.
func (s *Service) WriteRecordXLSX(rec model.InvoiceRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	if err := writeSummarySheet(f, RecordSummaryRows(rec)); err != nil {
		return nil, err
	}
	if err := writeItemsSheet(f, ItemRows(rec.Items)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"kind", "record",
		"invoice_number", rec.Header.Number,
		"items", len(rec.Items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, rows [][2]string) error {
	if _, err := f.NewSheet(infoSheet); err != nil {
		return err
	}
	// drop the default sheet so the workbook opens on the summary
	_ = f.DeleteSheet("Sheet1")
	idx, _ := f.GetSheetIndex(infoSheet)
	f.SetActiveSheet(idx)

	for i, kv := range rows {
		cellA, _ := excelize.CoordinatesToCellName(1, i+1)
		cellB, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(infoSheet, cellA, kv[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(infoSheet, cellB, kv[1]); err != nil {
			return err
		}
	}

	_ = f.SetColWidth(infoSheet, "A", "A", 20)
	_ = f.SetColWidth(infoSheet, "B", "B", 30)
	return nil
}

func writeItemsSheet(f *excelize.File, rows [][]string) error {
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return err
	}
	for r, cols := range rows {
		for c, v := range cols {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(itemsSheet, cell, v); err != nil {
				return err
			}
		}
	}

	_ = f.SetColWidth(itemsSheet, "A", "A", 40)
	_ = f.SetColWidth(itemsSheet, "B", "D", 12)
	return nil
}

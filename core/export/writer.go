package export

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"scan-verifier/core/reconcile"

	"github.com/xuri/excelize/v2"
)

const (
	// SheetName is the name of the results sheet.
	SheetName = "Результаты сканирования"
	// TimeLayout formats scan timestamps.
	TimeLayout = "02.01.2006 15:04:05"
	// ContentType is the MIME type of the rendered workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Headers are the column titles of the results sheet.
var Headers = []string{
	"Номер коробки",
	"ID отправления",
	"Номер отправления",
	"Штрихкод",
	"Статус отправления",
	"Статус сканирования",
	"Время сканирования",
}

// Filename returns the workbook name for an export made at the given instant.
func Filename(at time.Time) string {
	return fmt.Sprintf("scan_results_%s.xlsx", at.Format("2006-01-02_15-04"))
}

// Write renders rows as an xlsx workbook to w.
func Write(w io.Writer, rows []reconcile.ReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(Headers))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", lastCol, 22); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			r.BoxNumber,
			r.ShipmentID,
			r.ShipmentNumber,
			r.Barcode,
			r.OriginalStatus,
			r.ScanStatus,
			formatTime(r.ScannedAt),
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Render returns the workbook bytes for rows.
func Render(rows []reconcile.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimeLayout)
}

package manifest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Reader parses manifest workbooks using a column table.
type Reader struct {
	columns Columns
}

// NewReader creates a Reader. A nil table falls back to DefaultColumns.
func NewReader(columns Columns) *Reader {
	if columns == nil {
		columns = DefaultColumns()
	}
	return &Reader{columns: columns}
}

// Read parses the first sheet of an xlsx workbook.
func (r *Reader) Read(src io.Reader) ([]PackageRecord, error) {
	wb, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoData
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrUnreadable, sheets[0], err)
	}
	return r.FromRows(rows)
}

// FromRows builds records from a header row followed by data rows.
// Rows without any identifying value are dropped; their ordinal is not reused.
func (r *Reader) FromRows(rows [][]string) ([]PackageRecord, error) {
	if len(rows) < 2 {
		return nil, ErrNoData
	}

	located := r.columns.Locate(rows[0])
	_, hasBox := located[FieldBoxNumber]
	_, hasShipmentID := located[FieldShipmentID]
	_, hasBarcode := located[FieldBarcode]
	if !hasBox && !hasShipmentID && !hasBarcode {
		return nil, ErrNoIdentifierColumn
	}

	records := make([]PackageRecord, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rec := PackageRecord{
			BoxNumber:      cell(row, located, FieldBoxNumber),
			ShipmentID:     cell(row, located, FieldShipmentID),
			ShipmentNumber: cell(row, located, FieldShipmentNumber),
			Barcode:        cell(row, located, FieldBarcode),
			Status:         cell(row, located, FieldStatus),
			RowIndex:       i,
		}
		if !rec.HasIdentifier() {
			continue
		}
		if rec.Status == "" {
			rec.Status = StatusUnknown
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

func cell(row []string, located map[Field]int, f Field) string {
	idx, ok := located[f]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

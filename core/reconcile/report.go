package reconcile

import (
	"time"

	"scan-verifier/core/manifest"
)

// ReportRow is one line of the final reconciliation report.
type ReportRow struct {
	BoxNumber      string `json:"boxNumber"`
	ShipmentID     string `json:"shipmentId"`
	ShipmentNumber string `json:"shipmentNumber"`
	Barcode        string `json:"barcode"`
	// OriginalStatus is the manifest status text; blank for excess rows.
	OriginalStatus string `json:"originalStatus"`
	// ScanStatus is the resolved category, StatusNotScanned or StatusExcess.
	ScanStatus string `json:"scanStatus"`
	// ScannedAt is zero when the row was not scanned.
	ScannedAt time.Time `json:"scannedAt"`
	// RowIndex is the manifest row, or 0 for excess rows.
	RowIndex int  `json:"rowIndex,omitempty"`
	Excess   bool `json:"excess"`
}

// BuildReport projects a manifest and scan history into report rows: every
// manifest record once, in manifest order, followed by one row per excess event.
func BuildReport(records []manifest.PackageRecord, history []ScanEvent) []ReportRow {
	consumedBy := make(map[int]ScanEvent, len(history))
	excess := 0
	for _, ev := range history {
		if row, ok := ev.Consumed(); ok {
			if _, seen := consumedBy[row]; !seen {
				consumedBy[row] = ev
			}
			continue
		}
		excess++
	}

	rows := make([]ReportRow, 0, len(records)+excess)
	for _, rec := range records {
		row := ReportRow{
			BoxNumber:      rec.BoxNumber,
			ShipmentID:     rec.ShipmentID,
			ShipmentNumber: rec.ShipmentNumber,
			Barcode:        rec.Barcode,
			OriginalStatus: rec.Status,
			ScanStatus:     StatusNotScanned,
			RowIndex:       rec.RowIndex,
		}
		if ev, ok := consumedBy[rec.RowIndex]; ok {
			row.ScanStatus = ev.ResolvedStatus
			row.ScannedAt = ev.Timestamp
		}
		rows = append(rows, row)
	}

	for _, ev := range history {
		if !ev.IsExcess {
			continue
		}
		rows = append(rows, ReportRow{
			Barcode:    ev.ScannedValue,
			ScanStatus: StatusExcess,
			ScannedAt:  ev.Timestamp,
			Excess:     true,
		})
	}
	return rows
}

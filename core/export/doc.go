// Package export renders reconciliation reports to xlsx workbooks.
//
// The workbook has a single sheet with a bold header row and one line per
// report row. Scan times use the DD.MM.YYYY HH:MM:SS layout and are blank for
// rows that were never scanned.
//
// # Usage
//
//	rows := reconcile.BuildReport(state.Manifest, state.ScanHistory)
//	data, err := export.Render(rows)
//	name := export.Filename(time.Now())
package export

// Package archive keeps a history of exported reconciliation reports.
//
// After an export, the workbook is uploaded to the storage bucket under
// reports/<filename> and a summary plus every report line is written to the
// archived_sessions and archived_rows tables. Both destinations are optional
// and independent: a failure in one is reported but never blocks the other,
// nor the export itself.
//
// # Endpoints
//
//   - GET /archive: archived sessions and stored report objects
//   - GET /archive/schema: compares the archive tables with the models
package archive

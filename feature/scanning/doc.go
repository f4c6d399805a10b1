// Package scanning exposes the scanning session over HTTP.
//
// The Service wires a session, the resolution engine, the manifest reader
// and an optional report archive. It is shared by the HTTP handlers and the
// CLI commands.
//
// # Endpoints
//
//   - POST /session/manifest: upload an xlsx manifest (multipart field "file")
//   - POST /session/start, POST /session/stop: toggle scan mode
//   - POST /session/scan: submit {"value": "..."}; returns the outcome, the
//     phrase to announce and a toast
//   - GET /session, /session/last, /session/stats, /session/report
//   - GET /session/history?filter=: scans matching an expression
//   - POST /session/export: download the report workbook and clear the session
//   - DELETE /session: reset
//
// A write to the session store that fails does not fail the request. The
// response carries a "warning" field instead and the next mutation retries.
package scanning

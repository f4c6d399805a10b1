// Package manifest holds the package records a scanning session verifies
// against, and the spreadsheet reader that produces them.
//
// # Column Table
//
// Manifests come from different warehouses with different header wording.
// Columns maps each logical field (box number, shipment ID, shipment number,
// barcode, status) to a list of header rules. A rule is a set of substrings
// that must all occur in the case-folded header text. The table can be
// overridden from configuration (manifest.columns) without code changes.
//
// # Usage
//
//	r := manifest.NewReader(manifest.DefaultColumns())
//	records, err := r.Read(file)
//	if errors.Is(err, manifest.ErrNoIdentifierColumn) {
//	    // tell the operator which columns are expected
//	}
package manifest

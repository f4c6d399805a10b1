package manifest

import "errors"

var (
	// ErrUnreadable is returned when the file cannot be opened as a workbook.
	ErrUnreadable = errors.New("manifest file could not be read")
	// ErrNoData is returned when the sheet has a header but no data rows.
	ErrNoData = errors.New("manifest must contain a header row and data")
	// ErrNoIdentifierColumn is returned when none of the box number, shipment ID
	// or barcode columns can be located.
	ErrNoIdentifierColumn = errors.New("manifest has no box number, shipment ID or barcode column")
	// ErrNoRecords is returned when every data row lacks identifying values.
	ErrNoRecords = errors.New("manifest contains no rows with identifying values")
)

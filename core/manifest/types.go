package manifest

// Field names one column of a manifest row.
type Field string

const (
	FieldBarcode        Field = "barcode"
	FieldBoxNumber      Field = "boxNumber"
	FieldShipmentID     Field = "shipmentId"
	FieldShipmentNumber Field = "shipmentNumber"
	FieldStatus         Field = "status"
)

// IdentifyingFields lists the fields a scan can match, in match priority order.
var IdentifyingFields = []Field{FieldBarcode, FieldBoxNumber, FieldShipmentID, FieldShipmentNumber}

// StatusUnknown is assigned when the manifest has no status column or the cell is blank.
const StatusUnknown = "Unknown"

// PackageRecord is one manifest row.
// Records are immutable once a manifest has been loaded.
type PackageRecord struct {
	BoxNumber      string `json:"boxNumber,omitempty"`
	ShipmentID     string `json:"shipmentId,omitempty"`
	ShipmentNumber string `json:"shipmentNumber,omitempty"`
	Barcode        string `json:"barcode,omitempty"`
	Status         string `json:"status"`
	// RowIndex is the data-row ordinal in the source sheet (first row after the header is 1).
	RowIndex int `json:"rowIndex"`
}

// Value returns the raw value of the given field.
func (r PackageRecord) Value(f Field) string {
	switch f {
	case FieldBarcode:
		return r.Barcode
	case FieldBoxNumber:
		return r.BoxNumber
	case FieldShipmentID:
		return r.ShipmentID
	case FieldShipmentNumber:
		return r.ShipmentNumber
	case FieldStatus:
		return r.Status
	default:
		return ""
	}
}

// HasIdentifier reports whether at least one identifying field is non-empty.
func (r PackageRecord) HasIdentifier() bool {
	for _, f := range IdentifyingFields {
		if r.Value(f) != "" {
			return true
		}
	}
	return false
}

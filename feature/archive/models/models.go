package models

import "time"

// ArchivedSession summarises one exported scanning session.
type ArchivedSession struct {
	ID           string     `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	Filename     string     `gorm:"column:filename;type:varchar(255)" json:"filename"`
	ObjectKey    string     `gorm:"column:object_key;type:varchar(255)" json:"objectKey,omitempty"`
	StartedAt    *time.Time `gorm:"column:started_at" json:"startedAt,omitempty"`
	ExportedAt   time.Time  `gorm:"column:exported_at;index" json:"exportedAt"`
	ManifestRows int        `gorm:"column:manifest_rows" json:"manifestRows"`
	ConsumedRows int        `gorm:"column:consumed_rows" json:"consumedRows"`
	ExcessScans  int        `gorm:"column:excess_scans" json:"excessScans"`
	TotalScans   int        `gorm:"column:total_scans" json:"totalScans"`
}

func (ArchivedSession) TableName() string {
	return "archived_sessions"
}

// ArchivedRow is one report line of an archived session.
type ArchivedRow struct {
	ID             uint       `gorm:"primaryKey;column:id" json:"id"`
	SessionID      string     `gorm:"column:session_id;type:varchar(36);index" json:"sessionId"`
	Position       int        `gorm:"column:position" json:"position"`
	RowIndex       int        `gorm:"column:row_index" json:"rowIndex"`
	BoxNumber      string     `gorm:"column:box_number;type:varchar(255)" json:"boxNumber"`
	ShipmentID     string     `gorm:"column:shipment_id;type:varchar(255)" json:"shipmentId"`
	ShipmentNumber string     `gorm:"column:shipment_number;type:varchar(255)" json:"shipmentNumber"`
	Barcode        string     `gorm:"column:barcode;type:varchar(255)" json:"barcode"`
	OriginalStatus string     `gorm:"column:original_status;type:varchar(255)" json:"originalStatus"`
	ScanStatus     string     `gorm:"column:scan_status;type:varchar(64)" json:"scanStatus"`
	ScannedAt      *time.Time `gorm:"column:scanned_at" json:"scannedAt,omitempty"`
	Excess         bool       `gorm:"column:excess" json:"excess"`
}

func (ArchivedRow) TableName() string {
	return "archived_rows"
}

// ObjectSummary describes one report stored in the archive bucket.
type ObjectSummary struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

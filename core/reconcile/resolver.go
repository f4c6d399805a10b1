package reconcile

import (
	"strings"

	"scan-verifier/core/manifest"
	"scan-verifier/core/utils"
)

// Candidate is one manifest row matching a scanned value.
type Candidate struct {
	// Position is the record's index in the manifest slice.
	Position int
	Record   manifest.PackageRecord
	// Field is the first identifying field (in match priority order) that matched.
	Field manifest.Field
}

// Match is the result of resolving a scanned value against a manifest.
type Match struct {
	// All lists every matching row in manifest order.
	All []Candidate
}

// Found reports whether any row matched.
func (m Match) Found() bool {
	return len(m.All) > 0
}

// Primary returns the first match in manifest order.
func (m Match) Primary() (Candidate, bool) {
	if len(m.All) == 0 {
		return Candidate{}, false
	}
	return m.All[0], true
}

// Resolve finds every record in records that matches scannedValue.
// It has no side effects.
func Resolve(records []manifest.PackageRecord, scannedValue string) Match {
	return NewIndex(records).Resolve(scannedValue)
}

// fieldEqual applies the equality rule for a field to normalized values.
// Shipment numbers also match when either value contains the other.
func fieldEqual(f manifest.Field, stored, scanned string) bool {
	if stored == "" || scanned == "" {
		return false
	}
	if stored == scanned {
		return true
	}
	if f == manifest.FieldShipmentNumber {
		return strings.Contains(stored, scanned) || strings.Contains(scanned, stored)
	}
	return false
}

// normalizedRecord carries the folded identifying values of one record,
// indexed like manifest.IdentifyingFields.
type normalizedRecord [4]string

// Index is a manifest with identifying fields normalized once up front.
// It is read-only after construction and safe for concurrent use.
type Index struct {
	records    []manifest.PackageRecord
	normalized []normalizedRecord
}

// NewIndex normalizes every identifying field of records.
// The records slice is retained and must not be modified afterwards.
func NewIndex(records []manifest.PackageRecord) *Index {
	idx := &Index{
		records:    records,
		normalized: make([]normalizedRecord, len(records)),
	}
	for i, r := range records {
		for j, f := range manifest.IdentifyingFields {
			idx.normalized[i][j] = utils.Normalize(r.Value(f))
		}
	}
	return idx
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Resolve finds every indexed record matching scannedValue, in manifest order.
func (idx *Index) Resolve(scannedValue string) Match {
	scanned := utils.Normalize(scannedValue)
	if scanned == "" {
		return Match{}
	}

	var m Match
	for i, norm := range idx.normalized {
		for j, f := range manifest.IdentifyingFields {
			if fieldEqual(f, norm[j], scanned) {
				m.All = append(m.All, Candidate{Position: i, Record: idx.records[i], Field: f})
				break
			}
		}
	}
	return m
}

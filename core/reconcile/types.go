package reconcile

import (
	"time"

	"scan-verifier/core/manifest"
)

// Canonical status categories. Unrecognised manifest statuses are passed
// through verbatim and act as their own category.
const (
	CategoryRejected   = "Недопущенные"
	CategoryOverLimit  = "Перелимит"
	CategoryInspection = "Досмотр"
	CategoryApproved   = "Допущенные"
)

const (
	// StatusExcess is the resolved status of a scan that consumed no row.
	StatusExcess = "Excess"
	// StatusNotScanned marks report rows whose manifest record was never consumed.
	StatusNotScanned = "Not scanned"
)

// ScanEvent is one resolved scan. Events are appended to the session history
// and never modified afterwards.
type ScanEvent struct {
	// ScannedValue is the raw token as submitted.
	ScannedValue string `json:"scannedValue"`

	// MatchedRecord is the primary manifest match, if any. For a repeat scan of an
	// exhausted identifier it is still set even though no row was consumed.
	MatchedRecord *manifest.PackageRecord `json:"matchedRecord,omitempty"`

	// MatchedField is the identifying field the primary match was found on.
	MatchedField manifest.Field `json:"matchedField,omitempty"`

	// ConsumedRowIndex is the manifest row this scan consumed.
	ConsumedRowIndex *int `json:"consumedRowIndex,omitempty"`

	// ResolvedStatus is the category of the consumed row, or StatusExcess.
	ResolvedStatus string `json:"resolvedStatus"`

	// IsExcess is true iff ConsumedRowIndex is nil.
	IsExcess bool `json:"isExcess"`

	Timestamp time.Time `json:"timestamp"`
}

// Consumed returns the consumed row index and whether one is set.
func (e ScanEvent) Consumed() (int, bool) {
	if e.ConsumedRowIndex == nil {
		return 0, false
	}
	return *e.ConsumedRowIndex, true
}

// OutcomeKind classifies the result of submitting one token.
type OutcomeKind string

const (
	// OutcomeBlocked means scan mode is not active; nothing was recorded.
	OutcomeBlocked OutcomeKind = "blocked"
	// OutcomeIgnored means the token was empty after trimming, or the tracker
	// refused the event; nothing was recorded.
	OutcomeIgnored OutcomeKind = "ignored"
	// OutcomeMatched means a manifest row was consumed.
	OutcomeMatched OutcomeKind = "matched"
	// OutcomeExcess means the scan was recorded without consuming a row.
	OutcomeExcess OutcomeKind = "excess"
)

// Outcome is what the engine reports back for one submitted token.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`

	// Value is the submitted token.
	Value string `json:"value"`

	// Event is the recorded event; nil for blocked and ignored outcomes.
	Event *ScanEvent `json:"event,omitempty"`

	// Err is set when the event could not be recorded, or was recorded in
	// memory only (errors.Is(Err, ErrNotPersisted)).
	Err error `json:"-"`
}

// Category returns the resolved status of the outcome, or "" when nothing was recorded.
func (o Outcome) Category() string {
	if o.Event == nil {
		return ""
	}
	return o.Event.ResolvedStatus
}

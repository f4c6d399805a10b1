package reconcile

import (
	"math"

	"scan-verifier/core/manifest"
)

// CategoryCount is the number of scans resolved to one category.
type CategoryCount struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

// Stats summarises a session for display.
type Stats struct {
	TotalScans    int             `json:"totalScans"`
	Categories    []CategoryCount `json:"categories"`
	ManifestRows  int             `json:"manifestRows"`
	ConsumedRows  int             `json:"consumedRows"`
	RemainingRows int             `json:"remainingRows"`
	ExcessScans   int             `json:"excessScans"`
}

// categoryOrder fixes the display order of the well-known categories.
var categoryOrder = []string{CategoryApproved, CategoryRejected, CategoryOverLimit, CategoryInspection, StatusExcess}

// ComputeStats counts scans per category. Known categories come first in a
// fixed order, followed by custom statuses in order of first appearance.
// Categories with no scans are omitted.
func ComputeStats(records []manifest.PackageRecord, history []ScanEvent) Stats {
	counts := make(map[string]int)
	var custom []string
	known := make(map[string]bool, len(categoryOrder))
	for _, c := range categoryOrder {
		known[c] = true
	}

	st := Stats{TotalScans: len(history), ManifestRows: len(records)}
	for _, ev := range history {
		if counts[ev.ResolvedStatus] == 0 && !known[ev.ResolvedStatus] {
			custom = append(custom, ev.ResolvedStatus)
		}
		counts[ev.ResolvedStatus]++
		if ev.IsExcess {
			st.ExcessScans++
		} else {
			st.ConsumedRows++
		}
	}
	st.RemainingRows = st.ManifestRows - st.ConsumedRows

	st.Categories = []CategoryCount{}
	for _, c := range append(append([]string{}, categoryOrder...), custom...) {
		n := counts[c]
		if n == 0 {
			continue
		}
		st.Categories = append(st.Categories, CategoryCount{
			Category: c,
			Count:    n,
			Percent:  math.Round(float64(n)/float64(st.TotalScans)*1000) / 10,
		})
	}
	return st
}

package reconcile

import (
	"strings"

	"scan-verifier/core/utils"
)

// categoryStems is tested in order; the first stem contained in the folded
// status text decides the category. "недопущ" must precede "допущ".
var categoryStems = []struct {
	stem     string
	category string
}{
	{"недопущ", CategoryRejected},
	{"перелимит", CategoryOverLimit},
	{"досмотр", CategoryInspection},
	{"допущ", CategoryApproved},
}

// Classify maps a manifest row's free-text status to its category.
// A status of "0" is a numeric approval code. Anything unrecognised is
// returned unchanged.
func Classify(status string) string {
	s := utils.Normalize(status)
	if s == "0" {
		return CategoryApproved
	}
	for _, c := range categoryStems {
		if strings.Contains(s, c.stem) {
			return c.category
		}
	}
	return status
}

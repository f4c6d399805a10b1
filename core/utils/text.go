package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalize trims surrounding whitespace and applies Unicode case folding.
// Every identifier comparison in the module goes through this function.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// A Caser is stateful, so one is created per call.
	return cases.Fold().String(s)
}

// ContainsFold reports whether substr occurs in s after both are normalized.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Normalize(s), Normalize(substr))
}

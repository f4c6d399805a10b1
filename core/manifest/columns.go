package manifest

import (
	"strings"

	"scan-verifier/core/utils"
)

// Rule matches a header cell when every one of its parts occurs in the
// case-folded header text.
type Rule []string

// Match reports whether header satisfies the rule.
func (r Rule) Match(header string) bool {
	if len(r) == 0 {
		return false
	}
	h := utils.Normalize(header)
	if h == "" {
		return false
	}
	for _, part := range r {
		if !utils.ContainsFold(h, part) {
			return false
		}
	}
	return true
}

// Columns maps each logical field to the header rules that identify it.
// Rules are tried in order; the first header that satisfies any rule wins.
type Columns map[Field][]Rule

// resolveOrder is the order in which fields claim header columns. Shipment
// columns are claimed before barcode so that a header such as
// "ID отправления" is not mistaken for a code column.
var resolveOrder = []Field{FieldBoxNumber, FieldShipmentID, FieldShipmentNumber, FieldBarcode, FieldStatus}

// DefaultColumns returns the built-in header table for Russian and English manifests.
func DefaultColumns() Columns {
	return Columns{
		FieldBoxNumber:      {{"коробк"}, {"box"}},
		FieldShipmentID:     {{"id", "отправ"}, {"shipment id"}},
		FieldShipmentNumber: {{"номер", "отправ"}, {"shipment number"}},
		FieldBarcode:        {{"штрих"}, {"код"}, {"barcode"}},
		FieldStatus:         {{"статус"}, {"status"}},
	}
}

// FromConfig builds a column table from configuration. Field names are
// matched case-insensitively, since config keys are lower-cased on load.
// Fields missing from cfg keep their default rules; unknown names are ignored.
func FromConfig(cfg map[string][][]string) Columns {
	cols := DefaultColumns()
	for name, rules := range cfg {
		field, ok := fieldByName(name)
		if !ok || len(rules) == 0 {
			continue
		}
		converted := make([]Rule, 0, len(rules))
		for _, r := range rules {
			if len(r) > 0 {
				converted = append(converted, Rule(r))
			}
		}
		if len(converted) > 0 {
			cols[field] = converted
		}
	}
	return cols
}

func fieldByName(name string) (Field, bool) {
	for _, f := range resolveOrder {
		if strings.EqualFold(string(f), name) {
			return f, true
		}
	}
	return "", false
}

// Locate returns the column index of every field found in headers.
// Each header column is assigned to at most one field.
func (c Columns) Locate(headers []string) map[Field]int {
	found := make(map[Field]int)
	taken := make(map[int]bool)

	for _, field := range resolveOrder {
		for _, rule := range c[field] {
			idx := -1
			for i, h := range headers {
				if !taken[i] && rule.Match(h) {
					idx = i
					break
				}
			}
			if idx >= 0 {
				found[field] = idx
				taken[idx] = true
				break
			}
		}
	}
	return found
}

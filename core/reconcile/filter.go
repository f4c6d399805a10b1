package reconcile

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ScanEnv is the environment history filter expressions are evaluated against.
type ScanEnv struct {
	Value          string `expr:"value"`
	Status         string `expr:"status"`
	Field          string `expr:"field"`
	Excess         bool   `expr:"excess"`
	Row            int    `expr:"row"`
	Box            string `expr:"box"`
	ShipmentID     string `expr:"shipment_id"`
	ShipmentNumber string `expr:"shipment_number"`
	Barcode        string `expr:"barcode"`
}

// Filter selects scan events.
type Filter struct {
	program *vm.Program
}

// CompileFilter compiles a boolean expression such as
// `excess || status == "Досмотр"`. An empty expression matches every event.
func CompileFilter(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return &Filter{}, nil
	}
	program, err := expr.Compile(expression, expr.Env(ScanEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter '%s': %w", expression, err)
	}
	return &Filter{program: program}, nil
}

// Match reports whether ev satisfies the filter. Evaluation errors count as no match.
func (f *Filter) Match(ev ScanEvent) bool {
	if f == nil || f.program == nil {
		return true
	}
	result, err := expr.Run(f.program, eventToEnv(ev))
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

// Apply returns the events matching the filter, preserving order.
func (f *Filter) Apply(history []ScanEvent) []ScanEvent {
	out := make([]ScanEvent, 0, len(history))
	for _, ev := range history {
		if f.Match(ev) {
			out = append(out, ev)
		}
	}
	return out
}

func eventToEnv(ev ScanEvent) ScanEnv {
	env := ScanEnv{
		Value:  ev.ScannedValue,
		Status: ev.ResolvedStatus,
		Field:  string(ev.MatchedField),
		Excess: ev.IsExcess,
	}
	if row, ok := ev.Consumed(); ok {
		env.Row = row
	}
	if rec := ev.MatchedRecord; rec != nil {
		env.Box = rec.BoxNumber
		env.ShipmentID = rec.ShipmentID
		env.ShipmentNumber = rec.ShipmentNumber
		env.Barcode = rec.Barcode
	}
	return env
}

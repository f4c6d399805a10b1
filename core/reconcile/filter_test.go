package reconcile

import (
	"testing"

	"scan-verifier/core/manifest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	row := 4
	history := []ScanEvent{
		{
			ScannedValue:     "X",
			MatchedRecord:    &manifest.PackageRecord{ShipmentID: "X", BoxNumber: "B4", RowIndex: 4},
			MatchedField:     manifest.FieldShipmentID,
			ConsumedRowIndex: &row,
			ResolvedStatus:   CategoryInspection,
		},
		{ScannedValue: "ghost", ResolvedStatus: StatusExcess, IsExcess: true},
	}

	tests := []struct {
		name string
		expr string
		want []string
	}{
		{"Empty", "", []string{"X", "ghost"}},
		{"Excess", "excess", []string{"ghost"}},
		{"Status", `status == "Досмотр"`, []string{"X"}},
		{"Field", `field == "shipmentId" && row == 4`, []string{"X"}},
		{"Box", `box startsWith "B"`, []string{"X"}},
		{"None", `value == "nope"`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := CompileFilter(tt.expr)
			require.NoError(t, err)

			got := []string{}
			for _, ev := range f.Apply(history) {
				got = append(got, ev.ScannedValue)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileFilter_Errors(t *testing.T) {
	_, err := CompileFilter("status +")
	assert.Error(t, err)

	_, err = CompileFilter(`value`)
	assert.Error(t, err, "non-boolean expressions are rejected")

	_, err = CompileFilter("unknown_field == 1")
	assert.Error(t, err)
}

func TestFilter_NilMatchesAll(t *testing.T) {
	var f *Filter
	assert.True(t, f.Match(ScanEvent{}))
}

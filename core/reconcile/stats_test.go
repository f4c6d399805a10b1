package reconcile

import (
	"testing"

	"scan-verifier/core/manifest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestComputeStats(t *testing.T) {
	records := []manifest.PackageRecord{
		{Barcode: "A", Status: "0", RowIndex: 1},
		{Barcode: "B", Status: "карантин", RowIndex: 2},
		{Barcode: "C", Status: "недопущен", RowIndex: 3},
		{Barcode: "D", Status: "0", RowIndex: 4},
	}
	tr := newFakeTracker(records)
	e := NewEngine(tr, nil, zap.NewNop())
	for _, token := range []string{"B", "A", "A", "C", "zzz", "D"} {
		e.Submit(token)
	}

	st := ComputeStats(records, tr.history)

	assert.Equal(t, 6, st.TotalScans)
	assert.Equal(t, 4, st.ManifestRows)
	assert.Equal(t, 4, st.ConsumedRows)
	assert.Equal(t, 0, st.RemainingRows)
	assert.Equal(t, 2, st.ExcessScans)

	require.Len(t, st.Categories, 4)
	assert.Equal(t, CategoryCount{Category: CategoryApproved, Count: 2, Percent: 33.3}, st.Categories[0])
	assert.Equal(t, CategoryCount{Category: CategoryRejected, Count: 1, Percent: 16.7}, st.Categories[1])
	assert.Equal(t, CategoryCount{Category: StatusExcess, Count: 2, Percent: 33.3}, st.Categories[2])
	assert.Equal(t, CategoryCount{Category: "карантин", Count: 1, Percent: 16.7}, st.Categories[3])
}

func TestComputeStats_Empty(t *testing.T) {
	st := ComputeStats(nil, nil)

	assert.Equal(t, 0, st.TotalScans)
	assert.Empty(t, st.Categories)
	assert.NotNil(t, st.Categories)
}

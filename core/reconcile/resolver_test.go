package reconcile

import (
	"testing"

	"scan-verifier/core/manifest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_FuzzyShipmentNumber(t *testing.T) {
	records := []manifest.PackageRecord{
		{ShipmentNumber: "SH-12345-A", Status: "0", RowIndex: 1},
	}

	m := Resolve(records, "12345")
	require.True(t, m.Found())
	primary, _ := m.Primary()
	assert.Equal(t, manifest.FieldShipmentNumber, primary.Field)

	assert.False(t, Resolve(records, "99999").Found())

	// The stored value may also be the shorter one.
	m = Resolve([]manifest.PackageRecord{{ShipmentNumber: "12345", RowIndex: 1}}, "xx-12345-yy")
	assert.True(t, m.Found())
}

func TestResolve_ExactFieldsAreNotFuzzy(t *testing.T) {
	records := []manifest.PackageRecord{
		{Barcode: "4600000000017", BoxNumber: "BOX-77", ShipmentID: "ID-900", RowIndex: 1},
	}

	assert.False(t, Resolve(records, "460000").Found())
	assert.False(t, Resolve(records, "BOX").Found())
	assert.False(t, Resolve(records, "900").Found())
	assert.True(t, Resolve(records, "  box-77 ").Found())
}

func TestResolve_FieldPriority(t *testing.T) {
	// Same value in barcode and shipment ID: barcode wins.
	records := []manifest.PackageRecord{
		{Barcode: "X1", ShipmentID: "x1", RowIndex: 1},
		{ShipmentID: "X1", RowIndex: 2},
	}

	m := Resolve(records, "x1")
	require.Len(t, m.All, 2)
	assert.Equal(t, manifest.FieldBarcode, m.All[0].Field)
	assert.Equal(t, manifest.FieldShipmentID, m.All[1].Field)
	assert.Equal(t, 0, m.All[0].Position)
	assert.Equal(t, 1, m.All[1].Position)
}

func TestResolve_AllMatchesInManifestOrder(t *testing.T) {
	records := []manifest.PackageRecord{
		{ShipmentID: "X", RowIndex: 3},
		{Barcode: "other", RowIndex: 4},
		{BoxNumber: "X", RowIndex: 7},
	}

	m := Resolve(records, "x")
	require.Len(t, m.All, 2)
	assert.Equal(t, 3, m.All[0].Record.RowIndex)
	assert.Equal(t, 7, m.All[1].Record.RowIndex)
}

func TestResolve_EmptyValues(t *testing.T) {
	records := []manifest.PackageRecord{
		{Barcode: "", ShipmentNumber: "", BoxNumber: "B", RowIndex: 1},
	}

	assert.False(t, Resolve(records, "").Found())
	assert.False(t, Resolve(records, "   ").Found())
	// An empty shipment number must not match through containment.
	assert.False(t, Resolve(records, "anything").Found())
	_, ok := Resolve(nil, "B").Primary()
	assert.False(t, ok)
}

func TestIndex_MatchesResolveOverRawManifest(t *testing.T) {
	records := []manifest.PackageRecord{
		{Barcode: "AAA", RowIndex: 1},
		{ShipmentNumber: "SH-AAA-1", RowIndex: 2},
		{BoxNumber: "Ааа", RowIndex: 3},
	}
	idx := NewIndex(records)

	for _, token := range []string{"aaa", "AAA", "sh-aaa-1", "ААА", "zzz"} {
		assert.Equal(t, Resolve(records, token), idx.Resolve(token), token)
	}
	assert.Equal(t, 3, idx.Len())
}

package session

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"scan-verifier/core/manifest"
	"scan-verifier/core/reconcile"
)

// Key is the store key the snapshot is written under.
const Key = "scanning-session"

// State is a point-in-time copy of the session.
type State struct {
	Active             bool                     `json:"active"`
	StartedAt          *time.Time               `json:"startedAt,omitempty"`
	Manifest           []manifest.PackageRecord `json:"manifest"`
	ScanHistory        []reconcile.ScanEvent    `json:"scanHistory"`
	ConsumedRowIndices []int                    `json:"consumedRowIndices"`
}

func encodeState(st State) ([]byte, error) {
	return json.Marshal(st)
}

func decodeState(data []byte) (State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return st, nil
}

// consumedFromHistory rebuilds the consumed row set from the event log.
func consumedFromHistory(history []reconcile.ScanEvent) (map[int]struct{}, error) {
	consumed := make(map[int]struct{}, len(history))
	for i, ev := range history {
		row, ok := ev.Consumed()
		if ok == ev.IsExcess {
			return nil, fmt.Errorf("%w: event %d excess flag disagrees with consumed row", ErrCorrupt, i)
		}
		if !ok {
			continue
		}
		if _, dup := consumed[row]; dup {
			return nil, fmt.Errorf("%w: row %d consumed twice", ErrCorrupt, row)
		}
		consumed[row] = struct{}{}
	}
	return consumed, nil
}

func sortedRows(set map[int]struct{}) []int {
	rows := make([]int, 0, len(set))
	for r := range set {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

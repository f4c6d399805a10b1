package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"scan-verifier/core/manifest"
	"scan-verifier/core/reconcile"

	"go.uber.org/zap"
)

// Session is the scanning session. It implements reconcile.Tracker.
type Session struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time

	mu         sync.RWMutex
	active     bool
	startedAt  *time.Time
	records    []manifest.PackageRecord
	history    []reconcile.ScanEvent
	consumed   map[int]struct{}
	generation uint64
	revision   uint64
	dirty      bool
}

var _ reconcile.Tracker = (*Session)(nil)

// New creates an empty session backed by store. Call Restore to load a
// previously persisted snapshot.
func New(store Store, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		store:    store,
		logger:   logger,
		now:      time.Now,
		consumed: make(map[int]struct{}),
	}
}

// SetClock replaces the time source used for StartedAt.
func (s *Session) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// Restore loads the stored snapshot. A missing snapshot leaves a fresh session.
// The consumed set is rebuilt from the history; a stored set that disagrees
// with it is logged and replaced.
func (s *Session) Restore() error {
	data, err := s.store.Get(Key)
	if errors.Is(err, ErrNotFound) {
		s.logger.Debug("No stored session, starting fresh")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	st, err := decodeState(data)
	if err != nil {
		return err
	}
	consumed, err := consumedFromHistory(st.ScanHistory)
	if err != nil {
		return err
	}
	if !sameRows(sortedRows(consumed), st.ConsumedRowIndices) {
		s.logger.Warn("Stored consumed rows disagree with scan history, rebuilding",
			zap.Int("stored", len(st.ConsumedRowIndices)), zap.Int("rebuilt", len(consumed)))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = st.Active
	s.startedAt = st.StartedAt
	s.records = st.Manifest
	s.history = st.ScanHistory
	s.consumed = consumed
	s.generation++
	s.revision++
	s.dirty = false

	s.logger.Info("Session restored",
		zap.Bool("active", s.active),
		zap.Int("records", len(s.records)),
		zap.Int("scans", len(s.history)))
	return nil
}

// LoadManifest replaces the manifest and resets history and consumed rows.
func (s *Session) LoadManifest(records []manifest.PackageRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return ErrScanningActive
	}
	s.records = append([]manifest.PackageRecord(nil), records...)
	s.history = nil
	s.consumed = make(map[int]struct{})
	s.startedAt = nil
	s.generation++
	s.revision++
	return s.persist("manifest load")
}

// StartScanning turns scan mode on. It fails with ErrEmptyManifest and
// changes nothing when no manifest is loaded.
func (s *Session) StartScanning() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		return ErrEmptyManifest
	}
	if s.active {
		return nil
	}
	started := s.now()
	s.active = true
	s.startedAt = &started
	s.revision++
	return s.persist("start")
}

// StopScanning turns scan mode off, keeping history and consumed rows.
func (s *Session) StopScanning() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil
	}
	s.active = false
	s.revision++
	return s.persist("stop")
}

// RecordScan appends ev to the history and marks its row consumed. gen is
// the manifest generation ev was resolved against; an event resolved against
// a replaced manifest is refused with reconcile.ErrStaleManifest.
func (s *Session) RecordScan(ev reconcile.ScanEvent, gen uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return reconcile.ErrNotActive
	}
	if gen != s.generation {
		return reconcile.ErrStaleManifest
	}
	row, ok := ev.Consumed()
	if ok == ev.IsExcess {
		return fmt.Errorf("inconsistent scan event for %q", ev.ScannedValue)
	}
	if ok {
		if _, taken := s.consumed[row]; taken {
			return fmt.Errorf("row %d: %w", row, ErrRowConsumed)
		}
		s.consumed[row] = struct{}{}
	}
	s.history = append(s.history, ev)
	s.revision++
	return s.persist("scan")
}

// Clear resets the session and removes the stored snapshot.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

// ClearAt clears the session only if it is still at revision rev, as
// returned by SnapshotAt. Otherwise it returns ErrChanged and changes nothing.
func (s *Session) ClearAt(rev uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rev != s.revision {
		return ErrChanged
	}
	return s.clearLocked()
}

func (s *Session) clearLocked() error {
	s.active = false
	s.startedAt = nil
	s.records = nil
	s.history = nil
	s.consumed = make(map[int]struct{})
	s.generation++
	s.revision++

	if err := s.store.Delete(Key); err != nil {
		s.dirty = true
		return &PersistError{Op: "clear", Err: err}
	}
	s.dirty = false
	return nil
}

// Flush rewrites the snapshot if an earlier write failed.
func (s *Session) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}
	return s.persist("flush")
}

// Dirty reports whether the stored snapshot is behind the in-memory state.
func (s *Session) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// SnapshotAt returns a copy of the current state and its revision. The
// revision changes with every mutation.
func (s *Session) SnapshotAt() (State, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked(), s.revision
}

// Verify checks that the consumed row set equals the one derived from history.
func (s *Session) Verify() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rebuilt, err := consumedFromHistory(s.history)
	if err != nil {
		return err
	}
	if !sameRows(sortedRows(rebuilt), sortedRows(s.consumed)) {
		return fmt.Errorf("consumed rows %v do not match history %v", sortedRows(s.consumed), sortedRows(rebuilt))
	}
	return nil
}

func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Manifest returns the loaded records. The slice is shared and must not be modified.
func (s *Session) Manifest() []manifest.PackageRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

func (s *Session) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func (s *Session) IsConsumed(rowIndex int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.consumed[rowIndex]
	return ok
}

// History returns a copy of the scan history.
func (s *Session) History() []reconcile.ScanEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]reconcile.ScanEvent(nil), s.history...)
}

// LastEvent returns the most recent scan event.
func (s *Session) LastEvent() (reconcile.ScanEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.history) == 0 {
		return reconcile.ScanEvent{}, false
	}
	return s.history[len(s.history)-1], true
}

func (s *Session) stateLocked() State {
	return State{
		Active:             s.active,
		StartedAt:          s.startedAt,
		Manifest:           append([]manifest.PackageRecord(nil), s.records...),
		ScanHistory:        append([]reconcile.ScanEvent(nil), s.history...),
		ConsumedRowIndices: sortedRows(s.consumed),
	}
}

// persist writes the full snapshot. The caller must hold the write lock.
func (s *Session) persist(op string) error {
	data, err := encodeState(s.stateLocked())
	if err == nil {
		err = s.store.Put(Key, data)
	}
	if err != nil {
		s.dirty = true
		s.logger.Warn("Failed to persist session", zap.String("op", op), zap.Error(err))
		return &PersistError{Op: op, Err: err}
	}
	s.dirty = false
	return nil
}

func sameRows(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

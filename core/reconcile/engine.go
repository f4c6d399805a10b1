package reconcile

import (
	"errors"
	"strings"
	"sync"
	"time"

	"scan-verifier/core/logger"
	"scan-verifier/core/manifest"

	"go.uber.org/zap"
)

var (
	// ErrNotActive is returned by a Tracker when a scan is recorded while scan mode is off.
	ErrNotActive = errors.New("scanning is not active")
	// ErrNotPersisted is matched by tracker errors that leave the event recorded
	// in memory but not yet written to durable storage.
	ErrNotPersisted = errors.New("session snapshot not persisted")
	// ErrStaleManifest is returned by a Tracker when the manifest was replaced
	// after the event was resolved against it.
	ErrStaleManifest = errors.New("manifest replaced during scan resolution")
)

// maxResolveAttempts bounds re-resolution when the manifest keeps changing under a scan.
const maxResolveAttempts = 3

// Tracker is the session state the engine consumes rows from.
type Tracker interface {
	// Active reports whether scan mode is accepting consumption.
	Active() bool
	// Manifest returns the loaded records. The slice must not be modified.
	Manifest() []manifest.PackageRecord
	// Generation changes every time the manifest is replaced or cleared.
	Generation() uint64
	// IsConsumed reports whether a row has already been matched to a scan.
	IsConsumed(rowIndex int) bool
	// RecordScan appends an event resolved against manifest generation gen.
	// It refuses the event with ErrStaleManifest when the generation has moved
	// on. An error matching ErrNotPersisted means the event was recorded in
	// memory but not written to durable storage.
	RecordScan(ev ScanEvent, gen uint64) error
}

// Observer is notified of every outcome after it has been recorded.
// Observation failures never undo a recorded scan.
type Observer interface {
	Observe(o Outcome) error
}

// Engine resolves scanned tokens against the tracker's manifest and decides
// which row, if any, each scan consumes.
type Engine struct {
	tracker  Tracker
	observer Observer
	logger   *zap.Logger
	now      func() time.Time

	mu       sync.Mutex
	index    *Index
	indexGen uint64
}

// NewEngine creates an engine. observer may be nil.
func NewEngine(tracker Tracker, observer Observer, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		tracker:  tracker,
		observer: observer,
		logger:   logger,
		now:      time.Now,
	}
}

// SetClock replaces the time source used for event timestamps.
func (e *Engine) SetClock(now func() time.Time) {
	e.mu.Lock()
	e.now = now
	e.mu.Unlock()
}

// Submit resolves one complete token. Submissions are serialized so that two
// concurrent scans can never consume the same row.
func (e *Engine) Submit(token string) Outcome {
	e.mu.Lock()
	var outcome Outcome
	for attempt := 1; ; attempt++ {
		var stale bool
		outcome, stale = e.resolve(token)
		if !stale {
			break
		}
		if attempt == maxResolveAttempts {
			e.logger.Error("Manifest kept changing, scan dropped", zap.String("scan", token))
			outcome = Outcome{Kind: OutcomeIgnored, Value: token, Err: ErrStaleManifest}
			break
		}
	}
	e.mu.Unlock()

	e.notify(outcome)
	return outcome
}

// resolve runs one resolution attempt. It reports stale when the manifest
// was replaced before the event could be recorded; nothing is recorded then.
func (e *Engine) resolve(token string) (out Outcome, stale bool) {
	if !e.tracker.Active() {
		return Outcome{Kind: OutcomeBlocked, Value: token}, false
	}
	if strings.TrimSpace(token) == "" {
		return Outcome{Kind: OutcomeIgnored, Value: token}, false
	}

	ev := ScanEvent{
		ScannedValue:   token,
		ResolvedStatus: StatusExcess,
		IsExcess:       true,
		Timestamp:      e.now(),
	}

	index, gen := e.currentIndex()
	l := logger.WithScan(e.logger, token, gen)
	match := index.Resolve(token)
	if primary, ok := match.Primary(); ok {
		rec := primary.Record
		ev.MatchedRecord = &rec
		ev.MatchedField = primary.Field

		for _, c := range match.All {
			if e.tracker.IsConsumed(c.Record.RowIndex) {
				continue
			}
			row := c.Record.RowIndex
			chosen := c.Record
			ev.MatchedRecord = &chosen
			ev.MatchedField = c.Field
			ev.ConsumedRowIndex = &row
			ev.ResolvedStatus = Classify(c.Record.Status)
			ev.IsExcess = false
			break
		}
	}

	err := e.tracker.RecordScan(ev, gen)
	switch {
	case err == nil:
	case errors.Is(err, ErrStaleManifest):
		l.Debug("Manifest replaced during resolution")
		return Outcome{}, true
	case errors.Is(err, ErrNotPersisted):
		l.Warn("Scan recorded but session snapshot not persisted", zap.Error(err))
	case errors.Is(err, ErrNotActive):
		return Outcome{Kind: OutcomeBlocked, Value: token}, false
	default:
		l.Error("Scan could not be recorded", zap.Error(err))
		return Outcome{Kind: OutcomeIgnored, Value: token, Err: err}, false
	}

	kind := OutcomeMatched
	if ev.IsExcess {
		kind = OutcomeExcess
	}
	out = Outcome{Kind: kind, Value: token, Event: &ev}
	if err != nil {
		out.Err = err
	}
	return out, false
}

// currentIndex rebuilds the normalized index when the manifest generation
// changes and returns it with the generation it was built for.
func (e *Engine) currentIndex() (*Index, uint64) {
	gen := e.tracker.Generation()
	if e.index == nil || e.indexGen != gen {
		e.index = NewIndex(e.tracker.Manifest())
		e.indexGen = gen
		e.logger.Debug("Rebuilt manifest index", zap.Int("records", e.index.Len()), zap.Uint64("generation", gen))
	}
	return e.index, e.indexGen
}

func (e *Engine) notify(o Outcome) {
	if e.observer == nil {
		return
	}
	if err := e.observer.Observe(o); err != nil {
		e.logger.Warn("Scan notification failed", zap.String("kind", string(o.Kind)), zap.Error(err))
	}
}

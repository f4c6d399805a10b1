package scanning

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"scan-verifier/core/export"
	"scan-verifier/core/manifest"
	"scan-verifier/core/notify"
	"scan-verifier/core/reconcile"
	"scan-verifier/core/session"
	"scan-verifier/feature/archive"

	"go.uber.org/zap"
)

// ErrNothingToExport is returned when exporting an empty session.
var ErrNothingToExport = errors.New("nothing to export")

// Archiver stores exported reports.
type Archiver interface {
	Archive(ctx context.Context, rep archive.Report) (*archive.Result, error)
}

// ScanResult is the response to one submitted token.
type ScanResult struct {
	reconcile.Outcome
	Announcement string        `json:"announcement,omitempty"`
	Toast        *notify.Toast `json:"toast,omitempty"`
	// Warning is set when the scan was recorded but not persisted.
	Warning string `json:"warning,omitempty"`
}

// ExportResult is a rendered report.
type ExportResult struct {
	Filename string          `json:"filename"`
	Data     []byte          `json:"-"`
	Rows     int             `json:"rows"`
	Archive  *archive.Result `json:"archive,omitempty"`
	// Warning is set when the session could not be removed from the store after export.
	Warning string `json:"warning,omitempty"`
}

// Service drives one scanning session.
type Service struct {
	session  *session.Session
	engine   *reconcile.Engine
	reader   *manifest.Reader
	archiver Archiver
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a service over sess. archiver and observer may be nil.
func NewService(sess *session.Session, reader *manifest.Reader, archiver Archiver, observer reconcile.Observer, logger *zap.Logger) *Service {
	return &Service{
		session:  sess,
		engine:   reconcile.NewEngine(sess, observer, logger),
		reader:   reader,
		archiver: archiver,
		logger:   logger,
		now:      time.Now,
	}
}

// SetClock replaces the time source for scans and exports.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
	s.engine.SetClock(now)
	s.session.SetClock(now)
}

// LoadManifest parses an xlsx manifest and replaces the session manifest.
// The current session is left intact when parsing fails. When the manifest is
// loaded but not persisted, the records are returned with the error.
func (s *Service) LoadManifest(r io.Reader) ([]manifest.PackageRecord, error) {
	records, err := s.reader.Read(r)
	if err != nil {
		return nil, err
	}
	err = s.session.LoadManifest(records)
	if err != nil && !errors.Is(err, reconcile.ErrNotPersisted) {
		return nil, err
	}
	s.logger.Info("Manifest loaded", zap.Int("records", len(records)))
	return records, err
}

// Start turns scan mode on.
func (s *Service) Start() error {
	if err := s.session.StartScanning(); err != nil {
		return err
	}
	s.logger.Info("Scanning started")
	return nil
}

// Stop turns scan mode off.
func (s *Service) Stop() error {
	if err := s.session.StopScanning(); err != nil {
		return err
	}
	s.logger.Info("Scanning stopped")
	return nil
}

// Clear resets the session.
func (s *Service) Clear() error {
	if err := s.session.Clear(); err != nil {
		return err
	}
	s.logger.Info("Session cleared")
	return nil
}

// Scan submits one token.
func (s *Service) Scan(value string) ScanResult {
	out := s.engine.Submit(value)
	res := ScanResult{Outcome: out, Announcement: notify.Announcement(out)}
	if toast, ok := notify.ToastFor(out); ok {
		res.Toast = &toast
	}
	if out.Err != nil && errors.Is(out.Err, reconcile.ErrNotPersisted) {
		res.Warning = out.Err.Error()
	}
	return res
}

// Snapshot returns the session state.
func (s *Service) Snapshot() session.State {
	return s.session.Snapshot()
}

// Last returns the most recent scan.
func (s *Service) Last() (reconcile.ScanEvent, bool) {
	return s.session.LastEvent()
}

// Stats summarises the session.
func (s *Service) Stats() reconcile.Stats {
	st := s.session.Snapshot()
	return reconcile.ComputeStats(st.Manifest, st.ScanHistory)
}

// History returns the scan events matching filter, oldest first.
func (s *Service) History(filter string) ([]reconcile.ScanEvent, error) {
	f, err := reconcile.CompileFilter(filter)
	if err != nil {
		return nil, err
	}
	return f.Apply(s.session.History()), nil
}

// Report builds the reconciliation report without exporting it.
func (s *Service) Report() []reconcile.ReportRow {
	st := s.session.Snapshot()
	return reconcile.BuildReport(st.Manifest, st.ScanHistory)
}

// exportAttempts bounds how often Export re-renders when scans keep landing
// between the snapshot and the clear.
const exportAttempts = 3

// Export renders the report, clears the session and archives the report.
// The session is cleared only if nothing changed since the rendered snapshot;
// otherwise the report is rendered again, so no scan is left out of both the
// file and the session. The session is kept when rendering fails. Archive
// failures are logged and reported in the result.
func (s *Service) Export(ctx context.Context) (*ExportResult, error) {
	var (
		st       session.State
		at       time.Time
		rows     []reconcile.ReportRow
		res      *ExportResult
		clearErr error
	)
	for attempt := 1; ; attempt++ {
		var rev uint64
		st, rev = s.session.SnapshotAt()
		if len(st.Manifest) == 0 && len(st.ScanHistory) == 0 {
			return nil, ErrNothingToExport
		}

		at = s.now()
		rows = reconcile.BuildReport(st.Manifest, st.ScanHistory)
		data, err := export.Render(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to render report: %w", err)
		}
		res = &ExportResult{Filename: export.Filename(at), Data: data, Rows: len(rows)}

		clearErr = s.session.ClearAt(rev)
		if !errors.Is(clearErr, session.ErrChanged) {
			break
		}
		if attempt == exportAttempts {
			return nil, fmt.Errorf("export aborted: %w", clearErr)
		}
		s.logger.Debug("Session changed during export, rendering again", zap.Int("attempt", attempt))
	}
	if clearErr != nil {
		if !errors.Is(clearErr, reconcile.ErrNotPersisted) {
			return nil, clearErr
		}
		res.Warning = clearErr.Error()
	}

	if s.archiver != nil {
		archived, err := s.archiver.Archive(ctx, archive.Report{
			Filename:   res.Filename,
			Data:       res.Data,
			StartedAt:  st.StartedAt,
			ExportedAt: at,
			Rows:       rows,
			Stats:      reconcile.ComputeStats(st.Manifest, st.ScanHistory),
		})
		if err != nil {
			s.logger.Warn("Report archive incomplete", zap.String("filename", res.Filename), zap.Error(err))
		}
		res.Archive = archived
	}

	s.logger.Info("Report exported", zap.String("filename", res.Filename), zap.Int("rows", res.Rows))
	return res, nil
}

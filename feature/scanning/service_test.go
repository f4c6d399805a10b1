package scanning

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"scan-verifier/core/reconcile"
	"scan-verifier/core/session"
	"scan-verifier/feature/archive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeArchiver struct {
	got []archive.Report
	err error
}

func (f *fakeArchiver) Archive(ctx context.Context, rep archive.Report) (*archive.Result, error) {
	f.got = append(f.got, rep)
	res := &archive.Result{SessionID: "s-1", Rows: len(rep.Rows)}
	if f.err != nil {
		res.Errors = []string{f.err.Error()}
	}
	return res, f.err
}

type failingStore struct {
	*session.MemoryStore
	fail bool
}

func (f *failingStore) Put(key string, value []byte) error {
	if f.fail {
		return errors.New("read-only filesystem")
	}
	return f.MemoryStore.Put(key, value)
}

func TestService_ScanFlow(t *testing.T) {
	svc := newTestService(t, session.NewMemoryStore(), nil)

	records, err := svc.LoadManifest(buildWorkbook(t, manifestRows))
	require.NoError(t, err)
	assert.Len(t, records, 3)

	blocked := svc.Scan("S-2")
	assert.Equal(t, reconcile.OutcomeBlocked, blocked.Kind)
	require.NotNil(t, blocked.Toast)
	assert.Empty(t, blocked.Announcement)

	require.NoError(t, svc.Start())

	first := svc.Scan("S-2")
	assert.Equal(t, reconcile.CategoryRejected, first.Category())
	assert.Equal(t, "недопущено", first.Announcement)

	second := svc.Scan("s-2")
	assert.Equal(t, reconcile.CategoryInspection, second.Category())

	third := svc.Scan("S-2")
	assert.Equal(t, reconcile.OutcomeExcess, third.Kind)
	assert.Equal(t, "излишки", third.Announcement)

	fuzzy := svc.Scan("1001")
	assert.Equal(t, reconcile.CategoryApproved, fuzzy.Category())
	assert.Equal(t, "ОК", fuzzy.Announcement)

	stats := svc.Stats()
	assert.Equal(t, 4, stats.TotalScans)
	assert.Equal(t, 0, stats.RemainingRows)

	excess, err := svc.History("excess")
	require.NoError(t, err)
	assert.Len(t, excess, 1)

	_, err = svc.History("excess +")
	assert.Error(t, err)

	last, ok := svc.Last()
	require.True(t, ok)
	assert.Equal(t, "1001", last.ScannedValue)
}

func TestService_LoadManifestKeepsSessionOnBadFile(t *testing.T) {
	svc := newTestService(t, session.NewMemoryStore(), nil)
	_, err := svc.LoadManifest(buildWorkbook(t, manifestRows))
	require.NoError(t, err)

	_, err = svc.LoadManifest(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
	assert.Len(t, svc.Snapshot().Manifest, 3)
}

func TestService_Export(t *testing.T) {
	arch := &fakeArchiver{}
	svc := newTestService(t, session.NewMemoryStore(), arch)

	_, err := svc.Export(context.Background())
	assert.ErrorIs(t, err, ErrNothingToExport)

	_, err = svc.LoadManifest(buildWorkbook(t, manifestRows))
	require.NoError(t, err)
	require.NoError(t, svc.Start())
	svc.Scan("4600000000017")
	svc.Scan("unknown-code")

	res, err := svc.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "scan_results_2026-10-16_09-30.xlsx", res.Filename)
	assert.Equal(t, 4, res.Rows)
	require.NotNil(t, res.Archive)
	assert.Equal(t, "s-1", res.Archive.SessionID)

	require.Len(t, arch.got, 1)
	assert.Equal(t, res.Filename, arch.got[0].Filename)
	assert.Equal(t, 1, arch.got[0].Stats.ExcessScans)
	assert.NotNil(t, arch.got[0].StartedAt)

	f, err := excelize.OpenReader(bytes.NewReader(res.Data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Результаты сканирования")
	require.NoError(t, err)
	assert.Len(t, rows, 5)

	st := svc.Snapshot()
	assert.False(t, st.Active)
	assert.Empty(t, st.Manifest)
	assert.Empty(t, st.ScanHistory)
}

func TestService_ExportArchiveFailureStillClears(t *testing.T) {
	arch := &fakeArchiver{err: errors.New("bucket unreachable")}
	svc := newTestService(t, session.NewMemoryStore(), arch)
	_, err := svc.LoadManifest(buildWorkbook(t, manifestRows))
	require.NoError(t, err)

	res, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"bucket unreachable"}, res.Archive.Errors)
	assert.Empty(t, svc.Snapshot().Manifest)
}

func TestService_PersistWarning(t *testing.T) {
	store := &failingStore{MemoryStore: session.NewMemoryStore()}
	svc := newTestService(t, store, nil)
	_, err := svc.LoadManifest(buildWorkbook(t, manifestRows))
	require.NoError(t, err)
	require.NoError(t, svc.Start())

	store.fail = true
	res := svc.Scan("4600000000017")

	assert.Equal(t, reconcile.OutcomeMatched, res.Kind)
	assert.Contains(t, res.Warning, "read-only filesystem")
	assert.Len(t, svc.Snapshot().ScanHistory, 1)
}

func TestService_ExportIncludesScanArrivingMidExport(t *testing.T) {
	arch := &fakeArchiver{}
	svc := newTestService(t, session.NewMemoryStore(), arch)
	_, err := svc.LoadManifest(buildWorkbook(t, manifestRows))
	require.NoError(t, err)
	require.NoError(t, svc.Start())
	svc.Scan("4600000000017")

	// The export reads the clock after taking its snapshot; a scan recorded
	// there lands between the snapshot and the clear.
	interfere := true
	svc.SetClock(func() time.Time {
		if interfere {
			interfere = false
			assert.Equal(t, reconcile.OutcomeMatched, svc.Scan("4600000000024").Kind)
		}
		return fixedNow()
	})

	res, err := svc.Export(context.Background())
	require.NoError(t, err)

	require.Len(t, arch.got, 1)
	report := arch.got[0].Rows
	require.Len(t, report, 3)
	assert.Equal(t, reconcile.CategoryApproved, report[0].ScanStatus)
	assert.Equal(t, reconcile.CategoryRejected, report[1].ScanStatus)
	assert.Equal(t, 2, arch.got[0].Stats.TotalScans)
	assert.Equal(t, 3, res.Rows)
	assert.Empty(t, svc.Snapshot().ScanHistory)
}

func TestService_ScanDuringArchiveIsBlocked(t *testing.T) {
	var late ScanResult
	svc := newTestService(t, session.NewMemoryStore(), nil)
	svc.archiver = archiverFunc(func(ctx context.Context, rep archive.Report) (*archive.Result, error) {
		late = svc.Scan("4600000000024")
		return &archive.Result{SessionID: "s-2", Rows: len(rep.Rows)}, nil
	})
	_, err := svc.LoadManifest(buildWorkbook(t, manifestRows))
	require.NoError(t, err)
	require.NoError(t, svc.Start())
	svc.Scan("4600000000017")

	_, err = svc.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, reconcile.OutcomeBlocked, late.Kind)
	assert.Empty(t, svc.Snapshot().ScanHistory)
}

type archiverFunc func(ctx context.Context, rep archive.Report) (*archive.Result, error)

func (f archiverFunc) Archive(ctx context.Context, rep archive.Report) (*archive.Result, error) {
	return f(ctx, rep)
}

package archive

import (
	"context"
	"errors"
	"testing"
	"time"

	"scan-verifier/core/reconcile"
	"scan-verifier/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleReport() Report {
	at := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	return Report{
		Filename:   "scan_results_2026-04-01_12-00.xlsx",
		Data:       []byte("xlsx-bytes"),
		ExportedAt: at,
		Rows: []reconcile.ReportRow{
			{Barcode: "100", ScanStatus: reconcile.CategoryApproved, ScannedAt: at, RowIndex: 1},
			{Barcode: "200", ScanStatus: reconcile.StatusNotScanned, RowIndex: 2},
		},
		Stats: reconcile.Stats{ManifestRows: 2, ConsumedRows: 1, TotalScans: 1},
	}
}

func TestService_Archive(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "scan-reports", "reports/scan_results_2026-04-01_12-00.xlsx", mock.Anything, int64(10), mock.MatchedBy(func(o minio.PutObjectOptions) bool {
		return o.UserMetadata["session-id"] != ""
	})).Return(minio.UploadInfo{}, nil)

	repo := setupSQLite(t)
	svc := NewService(client, "scan-reports", repo, zap.NewNop())

	res, err := svc.Archive(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.Equal(t, "reports/scan_results_2026-04-01_12-00.xlsx", res.ObjectKey)
	assert.Equal(t, 2, res.Rows)
	assert.Empty(t, res.Errors)
	client.AssertExpectations(t)

	sessions, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, res.SessionID, sessions[0].ID)
	assert.Equal(t, res.ObjectKey, sessions[0].ObjectKey)

	rows, err := repo.Rows(context.Background(), res.SessionID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.NotNil(t, rows[0].ScannedAt)
	assert.Nil(t, rows[1].ScannedAt)
}

func TestService_ArchiveUploadFailureStillSaves(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "scan-reports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket unreachable"))

	repo := setupSQLite(t)
	svc := NewService(client, "scan-reports", repo, zap.NewNop())

	res, err := svc.Archive(context.Background(), sampleReport())
	assert.ErrorContains(t, err, "bucket unreachable")
	require.Len(t, res.Errors, 1)
	assert.Empty(t, res.ObjectKey)

	sessions, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestService_List(t *testing.T) {
	client := new(mocks.Client)
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "reports/a.xlsx", Size: 42}
	ch <- minio.ObjectInfo{Key: "reports/b.xlsx", Size: 7}
	close(ch)
	client.On("ListObjects", mock.Anything, "scan-reports", minio.ListObjectsOptions{Prefix: ObjectPrefix, Recursive: true}).
		Return((<-chan minio.ObjectInfo)(ch))

	svc := NewService(client, "scan-reports", nil, zap.NewNop())

	listing, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, listing.Sessions)
	require.Len(t, listing.Objects, 2)
	assert.Equal(t, int64(42), listing.Objects[0].Size)
}

func TestService_ListObjectError(t *testing.T) {
	client := new(mocks.Client)
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("access denied")}
	close(ch)
	client.On("ListObjects", mock.Anything, "scan-reports", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	_, err := NewService(client, "scan-reports", nil, zap.NewNop()).List(context.Background(), 0)
	assert.ErrorContains(t, err, "access denied")
}

func TestService_Enabled(t *testing.T) {
	assert.False(t, NewService(nil, "", nil, zap.NewNop()).Enabled())
	assert.True(t, NewService(new(mocks.Client), "b", nil, zap.NewNop()).Enabled())

	_, err := NewService(nil, "", nil, zap.NewNop()).Verify()
	assert.Error(t, err)
}

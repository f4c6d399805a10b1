package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"scan-verifier/core/export"
	"scan-verifier/core/reconcile"
	"scan-verifier/core/storage"
	"scan-verifier/feature/archive/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ObjectPrefix is the bucket prefix exported reports are stored under.
const ObjectPrefix = "reports/"

// Report is one export handed to the archive.
type Report struct {
	Filename   string
	Data       []byte
	StartedAt  *time.Time
	ExportedAt time.Time
	Rows       []reconcile.ReportRow
	Stats      reconcile.Stats
}

// Result describes what was archived. Errors lists the destinations that failed.
type Result struct {
	SessionID string   `json:"sessionId"`
	ObjectKey string   `json:"objectKey,omitempty"`
	Rows      int      `json:"rows"`
	Errors    []string `json:"errors,omitempty"`
}

// Listing is the archive content.
type Listing struct {
	Sessions []models.ArchivedSession `json:"sessions"`
	Objects  []models.ObjectSummary   `json:"objects"`
}

// Service archives exported reports to object storage and SQL. Either
// destination may be nil.
type Service struct {
	client storage.Client
	bucket string
	repo   *Repository
	logger *zap.Logger
}

// NewService creates an archive service.
func NewService(client storage.Client, bucket string, repo *Repository, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		repo:   repo,
		logger: logger,
	}
}

// Enabled reports whether at least one destination is configured.
func (s *Service) Enabled() bool {
	return s.client != nil || s.repo != nil
}

// Archive stores the report in every configured destination. A failing
// destination does not stop the others; the joined error lists all failures.
func (s *Service) Archive(ctx context.Context, rep Report) (*Result, error) {
	res := &Result{SessionID: uuid.NewString(), Rows: len(rep.Rows)}
	var errs []error

	if s.client != nil {
		key := ObjectPrefix + rep.Filename
		_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(rep.Data), int64(len(rep.Data)), minio.PutObjectOptions{
			ContentType:  export.ContentType,
			UserMetadata: map[string]string{"session-id": res.SessionID},
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to upload report %s: %w", key, err))
		} else {
			res.ObjectKey = key
			s.logger.Info("Report uploaded", zap.String("bucket", s.bucket), zap.String("key", key))
		}
	}

	if s.repo != nil {
		sess := &models.ArchivedSession{
			ID:           res.SessionID,
			Filename:     rep.Filename,
			ObjectKey:    res.ObjectKey,
			StartedAt:    rep.StartedAt,
			ExportedAt:   rep.ExportedAt,
			ManifestRows: rep.Stats.ManifestRows,
			ConsumedRows: rep.Stats.ConsumedRows,
			ExcessScans:  rep.Stats.ExcessScans,
			TotalScans:   rep.Stats.TotalScans,
		}
		if err := s.repo.Save(ctx, sess, toArchivedRows(rep.Rows)); err != nil {
			errs = append(errs, err)
		} else {
			s.logger.Info("Report archived", zap.String("session_id", res.SessionID), zap.Int("rows", len(rep.Rows)))
		}
	}

	for _, err := range errs {
		res.Errors = append(res.Errors, err.Error())
	}
	return res, errors.Join(errs...)
}

// List returns archived sessions (newest first) and stored report objects.
func (s *Service) List(ctx context.Context, limit int) (*Listing, error) {
	listing := &Listing{Sessions: []models.ArchivedSession{}, Objects: []models.ObjectSummary{}}

	if s.repo != nil {
		sessions, err := s.repo.List(ctx, limit)
		if err != nil {
			return nil, err
		}
		listing.Sessions = sessions
	}

	if s.client != nil {
		for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: ObjectPrefix, Recursive: true}) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list reports: %w", obj.Err)
			}
			listing.Objects = append(listing.Objects, models.ObjectSummary{
				Key:          obj.Key,
				Size:         obj.Size,
				LastModified: obj.LastModified,
			})
		}
	}
	return listing, nil
}

// Verify checks the archive tables against the models.
func (s *Service) Verify() (*SchemaReport, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("archive database is not configured")
	}
	return s.repo.Verify()
}

func toArchivedRows(rows []reconcile.ReportRow) []models.ArchivedRow {
	out := make([]models.ArchivedRow, len(rows))
	for i, r := range rows {
		out[i] = models.ArchivedRow{
			Position:       i + 1,
			RowIndex:       r.RowIndex,
			BoxNumber:      r.BoxNumber,
			ShipmentID:     r.ShipmentID,
			ShipmentNumber: r.ShipmentNumber,
			Barcode:        r.Barcode,
			OriginalStatus: r.OriginalStatus,
			ScanStatus:     r.ScanStatus,
			Excess:         r.Excess,
		}
		if !r.ScannedAt.IsZero() {
			at := r.ScannedAt
			out[i].ScannedAt = &at
		}
	}
	return out
}

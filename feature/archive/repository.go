package archive

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"scan-verifier/core/database"
	"scan-verifier/feature/archive/models"

	"gorm.io/gorm"
)

// rowBatchSize bounds the number of archived rows per INSERT statement.
const rowBatchSize = 500

// Repository stores archive summaries and rows in SQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the archive tables.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&models.ArchivedSession{}, &models.ArchivedRow{}); err != nil {
		return fmt.Errorf("failed to migrate archive tables: %w", err)
	}
	return nil
}

// Save writes a session summary and its rows in one transaction.
func (r *Repository) Save(ctx context.Context, sess *models.ArchivedSession, rows []models.ArchivedRow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sess).Error; err != nil {
			return fmt.Errorf("failed to save archived session: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		for i := range rows {
			rows[i].SessionID = sess.ID
		}
		if err := tx.CreateInBatches(rows, rowBatchSize).Error; err != nil {
			return fmt.Errorf("failed to save archived rows: %w", err)
		}
		return nil
	})
}

// List returns the most recent sessions first. A non-positive limit returns all.
func (r *Repository) List(ctx context.Context, limit int) ([]models.ArchivedSession, error) {
	var sessions []models.ArchivedSession
	q := r.db.WithContext(ctx).Order("exported_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list archived sessions: %w", err)
	}
	return sessions, nil
}

// Rows returns the archived rows of one session in report order.
func (r *Repository) Rows(ctx context.Context, sessionID string) ([]models.ArchivedRow, error) {
	var rows []models.ArchivedRow
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Order("position").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load archived rows: %w", err)
	}
	return rows, nil
}

// SchemaReport is the result of comparing the archive tables to the models.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
}

// TableReport lists the problems found in one table.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// Verify inspects the archive tables and reports missing columns and
// declared types that do not match. Type checks are skipped on Postgres,
// whose information schema reports type names rather than declarations.
func (r *Repository) Verify() (*SchemaReport, error) {
	report := &SchemaReport{Matched: true, Tables: make(map[string]TableReport)}
	checkTypes := r.db.Dialector.Name() != database.DriverPostgres

	for _, model := range []interface{ TableName() string }{models.ArchivedSession{}, models.ArchivedRow{}} {
		table := model.TableName()
		actual, err := database.GetTableColumns(r.db, table)
		if err != nil {
			return nil, err
		}
		actualMap := make(map[string]database.ColumnInfo, len(actual))
		for _, col := range actual {
			actualMap[col.Field] = col
		}

		var expected []string
		declared := make(map[string]string)
		t := reflect.TypeOf(model)
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("gorm")
			if col := gormTagValue(tag, "column"); col != "" {
				expected = append(expected, col)
				declared[col] = strings.ToLower(gormTagValue(tag, "type"))
			}
		}

		tbl := TableReport{
			MissingColumns: database.MissingColumns(actual, expected),
			TypeMismatches: []string{},
			Status:         "ok",
		}
		for _, col := range expected {
			got, ok := actualMap[col]
			want := declared[col]
			if ok && checkTypes && want != "" && !strings.Contains(got.Type, want) {
				tbl.TypeMismatches = append(tbl.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", col, want, got.Type))
			}
		}
		if len(tbl.MissingColumns) > 0 || len(tbl.TypeMismatches) > 0 {
			tbl.Status = "error"
			report.Matched = false
		}
		report.Tables[table] = tbl
	}
	return report, nil
}

// gormTagValue returns the value of key in a gorm struct tag.
func gormTagValue(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, key+":") {
			return strings.TrimPrefix(p, key+":")
		}
	}
	return ""
}

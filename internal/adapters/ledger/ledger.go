// Package ledger implements the compiled resource database on SQLite through GORM.
package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// compiledResource is the row layout of the compiled_resources table.
// SQLite integers are signed, so the unsigned hash and timestamps are stored bit-cast.
type compiledResource struct {
	ID                      int64  `gorm:"primaryKey;autoIncrement:false"`
	ResourcePath            string `gorm:"size:1024;not null"`
	CompilerVersion         int    `gorm:"not null"`
	SourceTimestamp         int64  `gorm:"not null"`
	DependencyTimestampHash int64  `gorm:"not null"`
}

// TableName overrides the GORM table name.
func (compiledResource) TableName() string {
	return "compiled_resources"
}

// Database implements ports.CompiledResourceDatabase.
type Database struct {
	mu     sync.Mutex
	db     *gorm.DB
	logger ports.Logger
}

// New creates a disconnected database.
func New(logger ports.Logger) *Database {
	return &Database{logger: logger}
}

// Connect opens the SQLite database at path and migrates the schema.
func (d *Database) Connect(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		return nil
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrDatabaseConnectFailed.Error()), "path", path)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatabaseConnectFailed.Error()), "path", path)
	}

	// A single connection keeps ":memory:" databases alive and serialises writers.
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&compiledResource{}); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatabaseConnectFailed.Error()), "path", path)
	}

	d.db = db
	return nil
}

// IsConnected reports whether the database is open.
func (d *Database) IsConnected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db != nil
}

// GetRecord returns the ledger entry for id, or the invalid record.
func (d *Database) GetRecord(id domain.ResourceID) domain.CompiledResourceRecord {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil || !id.IsValid() {
		return domain.CompiledResourceRecord{}
	}

	var row compiledResource
	err := d.db.Where("id = ?", int64(id.Hash())).Take(&row).Error //nolint:gosec // bit-cast
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			d.logger.Error(zerr.With(zerr.Wrap(err, "failed to read compiled resource record"), "resource", id.String()))
		}
		return domain.CompiledResourceRecord{}
	}

	return domain.CompiledResourceRecord{
		ResourceID: domain.NewResourceID(row.ResourcePath),
		Fingerprint: domain.Fingerprint{
			CompilerVersion:         row.CompilerVersion,
			SourceTimestamp:         uint64(row.SourceTimestamp),         //nolint:gosec // bit-cast
			DependencyTimestampHash: uint64(row.DependencyTimestampHash), //nolint:gosec // bit-cast
		},
	}
}

// WriteRecord inserts or replaces the ledger entry for the record's resource.
func (d *Database) WriteRecord(record domain.CompiledResourceRecord) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return domain.ErrDatabaseNotConnected
	}
	if !record.IsValid() {
		return zerr.With(domain.ErrInvalidResourceID, "resource", record.ResourceID.String())
	}

	row := compiledResource{
		ID:                      int64(record.ResourceID.Hash()), //nolint:gosec // bit-cast
		ResourcePath:            record.ResourceID.String(),
		CompilerVersion:         record.Fingerprint.CompilerVersion,
		SourceTimestamp:         int64(record.Fingerprint.SourceTimestamp),         //nolint:gosec // bit-cast
		DependencyTimestampHash: int64(record.Fingerprint.DependencyTimestampHash), //nolint:gosec // bit-cast
	}

	err := d.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatabaseWriteFailed.Error()), "resource", record.ResourceID.String())
	}
	return nil
}

// DeleteRecord removes the ledger entry for id.
func (d *Database) DeleteRecord(id domain.ResourceID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return domain.ErrDatabaseNotConnected
	}

	err := d.db.Where("id = ?", int64(id.Hash())).Delete(&compiledResource{}).Error //nolint:gosec // bit-cast
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatabaseWriteFailed.Error()), "resource", id.String())
	}
	return nil
}

// Count returns the number of records in the ledger.
func (d *Database) Count() (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return 0, domain.ErrDatabaseNotConnected
	}

	var n int64
	if err := d.db.Model(&compiledResource{}).Count(&n).Error; err != nil {
		return 0, zerr.Wrap(err, "failed to count compiled resource records")
	}
	return n, nil
}

// Close releases the underlying connection.
func (d *Database) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}

	sqlDB, err := d.db.DB()
	d.db = nil
	if err != nil {
		return zerr.Wrap(err, "failed to close compiled resource database")
	}
	return sqlDB.Close()
}

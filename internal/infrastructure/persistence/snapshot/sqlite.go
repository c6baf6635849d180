package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/zenerp/backend/internal/store"
)

// snapshotRecord is the single-row table holding the latest state document
type snapshotRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Document  []byte `gorm:"type:blob;not null"`
	UpdatedAt time.Time
}

func (snapshotRecord) TableName() string {
	return "snapshots"
}

// SQLiteGateway stores snapshots in a single-row sqlite table. The whole
// state document replaces the previous one on every save.
type SQLiteGateway struct {
	db *gorm.DB
}

// NewSQLiteGateway opens (or creates) the sqlite database and migrates the
// snapshot table
func NewSQLiteGateway(path string) (*SQLiteGateway, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	if err := db.AutoMigrate(&snapshotRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot table: %w", err)
	}
	return &SQLiteGateway{db: db}, nil
}

// Load reads the stored snapshot, returning ErrNoSnapshot for a fresh database
func (g *SQLiteGateway) Load() (*store.State, error) {
	var record snapshotRecord
	if err := g.db.First(&record, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	state := store.NewState()
	if err := json.Unmarshal(record.Document, state); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return state, nil
}

// Save upserts the state document into the single snapshot row
func (g *SQLiteGateway) Save(state *store.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	record := snapshotRecord{ID: 1, Document: data, UpdatedAt: time.Now()}
	if err := g.db.Save(&record).Error; err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying database connection
func (g *SQLiteGateway) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

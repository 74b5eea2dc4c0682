package store

import (
	"time"

	"gorm.io/gorm"
)

// CellRepository handles persistence of the single CellIdentity row.
type CellRepository struct {
	db *gorm.DB
}

// NewCellRepository creates a new cell identity repository.
func NewCellRepository(db *gorm.DB) *CellRepository {
	return &CellRepository{db: db}
}

// Upsert stores the given cell identity, creating the row (ID 1) if
// it does not yet exist or updating it in place otherwise.
func (r *CellRepository) Upsert(c *CellIdentity) error {
	c.ID = 1
	c.UpdatedAt = time.Now()
	return r.db.Save(c).Error
}

// Get retrieves the persisted cell identity, if any. Returns
// gorm.ErrRecordNotFound if none has been stored yet.
func (r *CellRepository) Get() (*CellIdentity, error) {
	var c CellIdentity
	if err := r.db.First(&c, 1).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// BurstLogRepository handles burst-history operations.
type BurstLogRepository struct {
	db *gorm.DB
}

// NewBurstLogRepository creates a new burst log repository.
func NewBurstLogRepository(db *gorm.DB) *BurstLogRepository {
	return &BurstLogRepository{db: db}
}

// Create adds a new burst log entry.
func (r *BurstLogRepository) Create(e *BurstLogEntry) error {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now()
	}
	return r.db.Create(e).Error
}

// GetRecent retrieves the most recent N burst log entries.
func (r *BurstLogRepository) GetRecent(limit int) ([]BurstLogEntry, error) {
	var entries []BurstLogEntry
	err := r.db.Order("recorded_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

// GetByHyperframe retrieves the log entry for a specific hyperframe,
// if one was recorded.
func (r *BurstLogRepository) GetByHyperframe(hyperframe uint32) (*BurstLogEntry, error) {
	var e BurstLogEntry
	err := r.db.Where("hyperframe = ?", hyperframe).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteOlderThan deletes burst log entries recorded before the
// given time, returning the number of rows removed.
func (r *BurstLogRepository) DeleteOlderThan(before time.Time) (int64, error) {
	result := r.db.Where("recorded_at < ?", before).Delete(&BurstLogEntry{})
	return result.RowsAffected, result.Error
}

package store

import "time"

// CellIdentity is the base station's persisted cell identity and
// SYSINFO offset. A single row (ID 1) represents the current
// configuration; the serve command upserts it at startup from the
// loaded config. Nothing in this module reads the row back in place of
// the config file.
type CellIdentity struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	MCC        uint32    `gorm:"not null" json:"mcc"`
	MNC        uint32    `gorm:"not null" json:"mnc"`
	ColourCode uint32    `gorm:"not null" json:"colour_code"`
	Offset     int       `gorm:"not null" json:"offset"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for CellIdentity.
func (CellIdentity) TableName() string {
	return "cell_identity"
}

// BurstLogEntry is a rolling operational record of bursts generated
// during one TDMA hyperframe: how many sync and normal bursts were
// produced, and how many FEC decode failures (of locally generated
// traffic, for self-check purposes) were observed.
type BurstLogEntry struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Hyperframe  uint32    `gorm:"index;not null" json:"hyperframe"`
	SyncCount   int       `gorm:"not null;default:0" json:"sync_count"`
	NormalCount int       `gorm:"not null;default:0" json:"normal_count"`
	FECFailures int       `gorm:"not null;default:0" json:"fec_failures"`
	RecordedAt  time.Time `gorm:"index;not null" json:"recorded_at"`
}

// TableName specifies the table name for BurstLogEntry.
func (BurstLogEntry) TableName() string {
	return "burst_log_entries"
}

package store

import (
	"os"
	"testing"
	"time"

	"github.com/dbehnke/tetra-corebs/internal/logger"
)

func TestNewDB(t *testing.T) {
	log := logger.New(logger.Config{Level: "error"})
	dbPath := "/tmp/test_tetra_corebs.db"
	defer func() { _ = os.Remove(dbPath) }()

	db, err := NewDB(Config{Path: dbPath}, log)
	if err != nil {
		t.Fatalf("NewDB returned error: %v", err)
	}
	defer func() { _ = db.Close() }()

	if db.db == nil {
		t.Error("expected non-nil database connection")
	}
}

func TestCellRepositoryUpsertAndGet(t *testing.T) {
	log := logger.New(logger.Config{Level: "error"})
	dbPath := "/tmp/test_cell_repo.db"
	defer func() { _ = os.Remove(dbPath) }()

	db, err := NewDB(Config{Path: dbPath}, log)
	if err != nil {
		t.Fatalf("NewDB returned error: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewCellRepository(db.GetDB())

	if err := repo.Upsert(&CellIdentity{MCC: 234, MNC: 1, ColourCode: 7, Offset: 1}); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}

	got, err := repo.Get()
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.MCC != 234 || got.MNC != 1 || got.ColourCode != 7 || got.Offset != 1 {
		t.Errorf("unexpected cell identity: %+v", got)
	}

	// Upsert again should update the same row, not create a second one.
	if err := repo.Upsert(&CellIdentity{MCC: 234, MNC: 1, ColourCode: 9, Offset: 1}); err != nil {
		t.Fatalf("second Upsert returned error: %v", err)
	}
	got, err = repo.Get()
	if err != nil {
		t.Fatalf("Get after second Upsert returned error: %v", err)
	}
	if got.ColourCode != 9 {
		t.Errorf("expected updated colour code 9, got %d", got.ColourCode)
	}
}

func TestBurstLogRepository(t *testing.T) {
	log := logger.New(logger.Config{Level: "error"})
	dbPath := "/tmp/test_burstlog_repo.db"
	defer func() { _ = os.Remove(dbPath) }()

	db, err := NewDB(Config{Path: dbPath}, log)
	if err != nil {
		t.Fatalf("NewDB returned error: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewBurstLogRepository(db.GetDB())

	for i := uint32(0); i < 3; i++ {
		e := &BurstLogEntry{Hyperframe: i, SyncCount: 1, NormalCount: 17}
		if err := repo.Create(e); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if e.ID == 0 {
			t.Error("expected non-zero ID after creation")
		}
	}

	recent, err := repo.GetRecent(2)
	if err != nil {
		t.Fatalf("GetRecent returned error: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent entries, got %d", len(recent))
	}

	entry, err := repo.GetByHyperframe(1)
	if err != nil {
		t.Fatalf("GetByHyperframe returned error: %v", err)
	}
	if entry.Hyperframe != 1 {
		t.Errorf("expected hyperframe 1, got %d", entry.Hyperframe)
	}

	deleted, err := repo.DeleteOlderThan(time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("DeleteOlderThan returned error: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 rows deleted, got %d", deleted)
	}
}

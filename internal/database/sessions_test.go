package database

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/umeed/internal/models"
)

func sessionRecord(preset string, cycles, seconds int) models.SessionRecord {
	return models.SessionRecord{PresetID: preset, Cycles: cycles, Seconds: seconds}
}

func TestSessionStats(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	stats, err := db.SessionStats(ctx)
	if err != nil {
		t.Fatalf("SessionStats failed: %v", err)
	}
	if stats.Completed != 0 || stats.TotalSeconds != 0 || stats.LastPreset != "" {
		t.Fatalf("expected empty stats, got %+v", stats)
	}

	if err := db.RecordSession(ctx, sessionRecord("478", 4, 76)); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}
	later := fixedNow.Add(time.Hour)
	rec := sessionRecord("box", 6, 96)
	rec.FinishedAt = later
	if err := db.RecordSession(ctx, rec); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}

	stats, err = db.SessionStats(ctx)
	if err != nil {
		t.Fatalf("SessionStats failed: %v", err)
	}
	if stats.Completed != 2 || stats.TotalSeconds != 172 || stats.LastPreset != "box" {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if !stats.LastFinished.Equal(later) {
		t.Fatalf("LastFinished = %v, want %v", stats.LastFinished, later)
	}
}

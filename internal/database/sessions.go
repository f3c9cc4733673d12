package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/umeed/internal/models"
)

// SessionStats summarises the breathing sessions finished this run.
type SessionStats struct {
	Completed    int
	TotalSeconds int
	LastPreset   string
	LastFinished time.Time
}

// RecordSession stores a finished breathing exercise.
func (d *Database) RecordSession(ctx context.Context, rec models.SessionRecord) error {
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = d.now()
	}
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO breathing_sessions (preset_id, cycles, seconds, finished_at) VALUES (?, ?, ?, ?)",
		rec.PresetID, rec.Cycles, rec.Seconds, rec.FinishedAt)
	return opErr("record", "session", rec.PresetID, err)
}

// SessionStats totals the recorded sessions.
func (d *Database) SessionStats(ctx context.Context) (SessionStats, error) {
	var s SessionStats
	err := d.DB.QueryRowContext(ctx,
		"SELECT COUNT(1), COALESCE(SUM(seconds), 0) FROM breathing_sessions").Scan(&s.Completed, &s.TotalSeconds)
	if err != nil {
		return SessionStats{}, opErr("stats", "session", "", err)
	}
	if s.Completed == 0 {
		return s, nil
	}
	err = d.DB.QueryRowContext(ctx,
		"SELECT preset_id, finished_at FROM breathing_sessions ORDER BY id DESC LIMIT 1").Scan(&s.LastPreset, &s.LastFinished)
	if err != nil {
		return SessionStats{}, opErr("stats", "session", "", err)
	}
	return s, nil
}

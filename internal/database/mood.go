package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/akyairhashvil/umeed/internal/config"
	"github.com/akyairhashvil/umeed/internal/models"
)

func validScore(v int) bool {
	return v >= config.MinMoodScore && v <= config.MaxMoodScore
}

// SaveMood stores entry, replacing any earlier entry for the same date.
// An empty date means today.
func (d *Database) SaveMood(ctx context.Context, entry models.MoodEntry) error {
	if entry.Date == "" {
		entry.Date = d.today()
	}
	if _, err := time.Parse(config.DateLayout, entry.Date); err != nil {
		return opErr("save", "mood", entry.Date, ErrInvalidDate)
	}
	if !validScore(entry.Mood) || !validScore(entry.Stress) || !validScore(entry.Energy) {
		return opErr("save", "mood", entry.Date, ErrInvalidScore)
	}
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO mood_entries (date, mood, stress, energy, notes, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			mood = excluded.mood,
			stress = excluded.stress,
			energy = excluded.energy,
			notes = excluded.notes,
			updated_at = excluded.updated_at`,
		entry.Date, entry.Mood, entry.Stress, entry.Energy, nullableString(entry.Notes), d.now())
	return opErr("save", "mood", entry.Date, err)
}

// RecentMoods returns up to limit entries, newest date first.
func (d *Database) RecentMoods(ctx context.Context, limit int) ([]models.MoodEntry, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT date, mood, stress, energy, notes
		FROM mood_entries
		ORDER BY date DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, opErr("list", "mood", "", err)
	}
	defer rows.Close()

	var entries []models.MoodEntry
	for rows.Next() {
		var e models.MoodEntry
		var notes sql.NullString
		if err := rows.Scan(&e.Date, &e.Mood, &e.Stress, &e.Energy, &notes); err != nil {
			return nil, opErr("list", "mood", "", err)
		}
		e.Notes = notes.String
		entries = append(entries, e)
	}
	return entries, opErr("list", "mood", "", rows.Err())
}

// AverageMood is the mean mood over the newest days entries, 0 when empty.
func (d *Database) AverageMood(ctx context.Context, days int) (float64, error) {
	var avg sql.NullFloat64
	err := d.DB.QueryRowContext(ctx, `
		SELECT AVG(mood) FROM (
			SELECT mood FROM mood_entries ORDER BY date DESC LIMIT ?
		)`, days).Scan(&avg)
	if err != nil {
		return 0, opErr("average", "mood", "", err)
	}
	return avg.Float64, nil
}

// MoodLabel describes a 1..10 score.
func MoodLabel(v int) string {
	switch {
	case v <= 2:
		return "Very Low"
	case v <= 4:
		return "Low"
	case v <= 6:
		return "Moderate"
	case v <= 8:
		return "Good"
	}
	return "Excellent"
}

package database

import (
	"context"
	"strings"
	"time"

	"github.com/akyairhashvil/umeed/internal/config"
	"github.com/akyairhashvil/umeed/internal/models"
	"github.com/akyairhashvil/umeed/internal/util"
	"github.com/google/uuid"
)

// AddJournalEntry stores a diary note. Blank content or an unknown mood is
// rejected. Hashtags in the content are merged into the entry's tags. The
// stored entry, with its new id and timestamps, is returned.
func (d *Database) AddJournalEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	entry.Content = strings.TrimSpace(entry.Content)
	if entry.Content == "" {
		return models.JournalEntry{}, opErr("add", "journal", "", ErrEmptyEntry)
	}
	if !entry.Mood.Valid() {
		return models.JournalEntry{}, opErr("add", "journal", "", ErrUnknownMood)
	}
	if entry.Date == "" {
		entry.Date = d.today()
	}
	if _, err := time.Parse(config.DateLayout, entry.Date); err != nil {
		return models.JournalEntry{}, opErr("add", "journal", "", ErrInvalidDate)
	}
	entry.ID = uuid.NewString()
	entry.Tags = util.MergeTags(entry.Tags, util.ExtractTags(entry.Content))
	entry.CreatedAt = d.now()

	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO journal_entries (id, date, content, mood, tags, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		entry.ID, entry.Date, entry.Content, string(entry.Mood), util.TagsToJSON(entry.Tags), entry.CreatedAt)
	if err != nil {
		return models.JournalEntry{}, opErr("add", "journal", entry.ID, err)
	}
	return entry, nil
}

// JournalEntries returns up to limit entries, newest first.
func (d *Database) JournalEntries(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, date, content, mood, tags, created_at
		FROM journal_entries
		ORDER BY date DESC, created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, opErr("list", "journal", "", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var e models.JournalEntry
		var mood, tags string
		if err := rows.Scan(&e.ID, &e.Date, &e.Content, &mood, &tags, &e.CreatedAt); err != nil {
			return nil, opErr("list", "journal", "", err)
		}
		e.Mood = models.JournalMood(mood)
		if e.Tags, err = util.JSONToTags(tags); err != nil {
			return nil, opErr("list", "journal", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, opErr("list", "journal", "", rows.Err())
}

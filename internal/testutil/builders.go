package testutil

import (
	"time"

	"github.com/akyairhashvil/umeed/internal/models"
)

// PresetBuilder provides fluent API for creating test presets.
type PresetBuilder struct {
	preset models.ExercisePreset
}

func NewPreset() *PresetBuilder {
	return &PresetBuilder{
		preset: models.ExercisePreset{
			ID:          "test",
			Name:        "Test Breathing",
			Description: "Preset used in tests",
			Pattern:     models.BreathingPattern{Inhale: 4, Hold: 4, Exhale: 4, Pause: 4},
			Cycles:      1,
		},
	}
}

func (b *PresetBuilder) WithID(id string) *PresetBuilder {
	b.preset.ID = id
	return b
}

func (b *PresetBuilder) WithName(name string) *PresetBuilder {
	b.preset.Name = name
	return b
}

func (b *PresetBuilder) WithPattern(inhale, hold, exhale, pause int) *PresetBuilder {
	b.preset.Pattern = models.BreathingPattern{Inhale: inhale, Hold: hold, Exhale: exhale, Pause: pause}
	return b
}

func (b *PresetBuilder) WithCycles(n int) *PresetBuilder {
	b.preset.Cycles = n
	return b
}

func (b *PresetBuilder) Build() models.ExercisePreset {
	return b.preset
}

// MoodBuilder provides fluent API for creating test mood entries.
type MoodBuilder struct {
	entry models.MoodEntry
}

func NewMood() *MoodBuilder {
	return &MoodBuilder{
		entry: models.MoodEntry{
			Date:   time.Now().Format("2006-01-02"),
			Mood:   5,
			Stress: 5,
			Energy: 5,
		},
	}
}

func (b *MoodBuilder) OnDate(date string) *MoodBuilder {
	b.entry.Date = date
	return b
}

func (b *MoodBuilder) WithScores(mood, stress, energy int) *MoodBuilder {
	b.entry.Mood, b.entry.Stress, b.entry.Energy = mood, stress, energy
	return b
}

func (b *MoodBuilder) WithNotes(notes string) *MoodBuilder {
	b.entry.Notes = notes
	return b
}

func (b *MoodBuilder) Build() models.MoodEntry {
	return b.entry
}

// JournalBuilder provides fluent API for creating test journal entries.
type JournalBuilder struct {
	entry models.JournalEntry
}

func NewJournal() *JournalBuilder {
	return &JournalBuilder{
		entry: models.JournalEntry{
			Date:    time.Now().Format("2006-01-02"),
			Content: "Test entry",
			Mood:    models.MoodNeutral,
		},
	}
}

func (b *JournalBuilder) WithContent(c string) *JournalBuilder {
	b.entry.Content = c
	return b
}

func (b *JournalBuilder) WithMood(m models.JournalMood) *JournalBuilder {
	b.entry.Mood = m
	return b
}

func (b *JournalBuilder) WithTags(tags ...string) *JournalBuilder {
	b.entry.Tags = tags
	return b
}

func (b *JournalBuilder) OnDate(date string) *JournalBuilder {
	b.entry.Date = date
	return b
}

func (b *JournalBuilder) Build() models.JournalEntry {
	return b.entry
}

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/akyairhashvil/umeed/internal/config"
	"github.com/akyairhashvil/umeed/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

type failingMoodStore struct{ err error }

func (f failingMoodStore) SaveMood(context.Context, models.MoodEntry) error { return f.err }

func (f failingMoodStore) RecentMoods(context.Context, int) ([]models.MoodEntry, error) {
	return nil, f.err
}

func (f failingMoodStore) AverageMood(context.Context, int) (float64, error) { return 0, f.err }

func runMood(m MoodModel, cmd tea.Cmd) MoodModel {
	for cmd != nil {
		m, cmd = m.Update(cmd())
	}
	return m
}

func TestMoodSliderBounds(t *testing.T) {
	m := NewMoodModel(context.Background(), nil, nil, ThemeByName("default"))
	for i := 0; i < 20; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.values[0] != config.MaxMoodScore {
		t.Fatalf("expected mood clamped at %d, got %d", config.MaxMoodScore, m.values[0])
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	for i := 0; i < 20; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.values[1] != config.MinMoodScore {
		t.Fatalf("expected stress clamped at %d, got %d", config.MinMoodScore, m.values[1])
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.focus != 2 {
		t.Fatalf("expected focus to wrap to energy, got %d", m.focus)
	}
}

func TestMoodSaveAndReload(t *testing.T) {
	db := setupModelDB(t)
	m := NewMoodModel(context.Background(), db, nil, ThemeByName("default"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = runMood(m, cmd)
	if m.Message != "Saved today's check-in" {
		t.Fatalf("unexpected message %q", m.Message)
	}
	if len(m.history) != 1 || m.history[0].Mood != 7 || m.history[0].Date != "2024-01-16" {
		t.Fatalf("unexpected history %+v", m.history)
	}
	if m.average != 7 {
		t.Fatalf("expected average 7, got %v", m.average)
	}
	view := m.View()
	if !strings.Contains(view, "7-day average: 7.0") || !strings.Contains(view, "Good") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestMoodSaveErrorShown(t *testing.T) {
	m := NewMoodModel(context.Background(), failingMoodStore{err: errors.New("disk full")}, nil, ThemeByName("default"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = runMood(m, cmd)
	if !strings.Contains(m.Message, "disk full") {
		t.Fatalf("expected error message, got %q", m.Message)
	}
}

func TestMoodEmptyHistoryView(t *testing.T) {
	m := NewMoodModel(context.Background(), nil, nil, ThemeByName("default"))
	if !strings.Contains(m.View(), "No check-ins yet.") {
		t.Fatalf("expected empty-history hint")
	}
}

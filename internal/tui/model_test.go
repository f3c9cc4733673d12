package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/umeed/internal/database"
	tea "github.com/charmbracelet/bubbletea"
)

func setupModelDB(t *testing.T) *database.Database {
	t.Helper()
	now := time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC)
	db, err := database.Open(context.Background(), database.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func newTestMainModel(t *testing.T) MainModel {
	t.Helper()
	m, err := NewMainModel(context.Background(), Options{Repo: setupModelDB(t), Preset: "478"})
	if err != nil {
		t.Fatalf("NewMainModel failed: %v", err)
	}
	return m
}

// drain runs cmd and feeds plain messages back into the model. Tick
// commands are skipped so the test never sleeps.
func drain(t *testing.T, m MainModel, cmd tea.Cmd) MainModel {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = drain(t, m, c)
		}
		return m
	}
	switch msg.(type) {
	case moodLoadedMsg, moodSavedMsg, journalLoadedMsg, journalSavedMsg, statsMsg, sessionRecordedMsg, chatReplyMsg,
		appointmentsLoadedMsg, appointmentBookedMsg, appointmentCancelledMsg:
		model, next := m.Update(msg)
		return drain(t, model.(MainModel), next)
	}
	return m
}

func TestNewMainModelUnknownPreset(t *testing.T) {
	if _, err := NewMainModel(context.Background(), Options{Preset: "nope"}); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
}

func TestMainModelTabCycles(t *testing.T) {
	m := newTestMainModel(t)
	if m.Active() != ViewBreathing {
		t.Fatalf("expected breathing view first, got %v", m.Active())
	}
	for _, want := range []View{ViewMood, ViewJournal, ViewChat, ViewSupport, ViewScreen, ViewBreathing} {
		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = model.(MainModel)
		if m.Active() != want {
			t.Fatalf("expected %v, got %v", want, m.Active())
		}
	}
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := model.(MainModel).Active(); got != ViewScreen {
		t.Fatalf("expected shift+tab to go back to screening, got %v", got)
	}
}

func TestMainModelLeavingBreathingStopsTimer(t *testing.T) {
	m := newTestMainModel(t)
	model, _ := m.Update(spaceKey)
	m = model.(MainModel)
	model, _ = m.Update(breathTickMsg{gen: m.breathing.gen})
	m = model.(MainModel)
	if !m.breathing.Running() {
		t.Fatalf("expected breathing to run")
	}
	stale := m.breathing.gen
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = model.(MainModel)
	if m.breathing.Running() {
		t.Fatalf("expected timer stopped after leaving the view")
	}
	model, cmd := m.Update(breathTickMsg{gen: stale})
	m = model.(MainModel)
	if cmd != nil || m.breathing.session.State().Elapsed != 0 {
		t.Fatalf("tick from closed view should be dropped")
	}
}

func TestMainModelQuit(t *testing.T) {
	m := newTestMainModel(t)
	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestMainModelQuitKeyTypesInJournal(t *testing.T) {
	m := newTestMainModel(t)
	m = m.switchTo(ViewJournal)
	model, _ := m.Update(keyRune('q'))
	m = model.(MainModel)
	if got := m.journal.input.Value(); got != "q" {
		t.Fatalf("expected q typed into journal, got %q", got)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c should always quit")
	}
}

func TestMainModelFinishedSessionUpdatesStats(t *testing.T) {
	m := newTestMainModel(t)
	model, _ := m.Update(spaceKey)
	m = model.(MainModel)
	var cmd tea.Cmd
	for i := 0; i < 76; i++ {
		model, cmd = m.Update(breathTickMsg{gen: m.breathing.gen})
		m = model.(MainModel)
	}
	m = drain(t, m, cmd)
	if m.stats.Completed != 1 || m.stats.TotalSeconds != 76 {
		t.Fatalf("unexpected stats %+v", m.stats)
	}
	if !strings.Contains(m.View(), "1 breathing sessions") {
		t.Fatalf("expected stats in footer")
	}
}

func TestMainModelInitLoadsViews(t *testing.T) {
	db := setupModelDB(t)
	if err := db.SeedDemo(context.Background()); err != nil {
		t.Fatalf("SeedDemo failed: %v", err)
	}
	m, err := NewMainModel(context.Background(), Options{Repo: db, Preset: "box"})
	if err != nil {
		t.Fatalf("NewMainModel failed: %v", err)
	}
	m = drain(t, m, m.Init())
	if len(m.mood.history) == 0 {
		t.Fatalf("expected seeded mood history")
	}
	if len(m.journal.entries) == 0 {
		t.Fatalf("expected seeded journal entries")
	}
	if len(m.support.appointments) != 4 {
		t.Fatalf("expected seeded appointments, got %d", len(m.support.appointments))
	}
}

func TestMainModelViewRendersTabs(t *testing.T) {
	m := newTestMainModel(t)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 30})
	view := model.(MainModel).View()
	for _, title := range viewTitles {
		if !strings.Contains(view, title) {
			t.Fatalf("view missing tab %q", title)
		}
	}
}

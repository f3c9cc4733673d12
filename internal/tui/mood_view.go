package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/akyairhashvil/umeed/internal/config"
	"github.com/akyairhashvil/umeed/internal/database"
	"github.com/akyairhashvil/umeed/internal/models"
	"github.com/akyairhashvil/umeed/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

var moodSliders = [...]string{"Mood", "Stress", "Energy"}

type moodLoadedMsg struct {
	entries []models.MoodEntry
	average float64
	err     error
}

type moodSavedMsg struct{ err error }

// MoodModel tracks today's mood, stress and energy and shows recent history.
type MoodModel struct {
	ctx     context.Context
	repo    database.MoodRepository
	logger  *zap.Logger
	theme   Theme
	keys    moodKeys
	help    help.Model
	values  [len(moodSliders)]int
	focus   int
	history []models.MoodEntry
	average float64
	Message string
}

func NewMoodModel(ctx context.Context, repo database.MoodRepository, logger *zap.Logger, theme Theme) MoodModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := MoodModel{ctx: ctx, repo: repo, logger: logger, theme: theme, keys: newMoodKeys(), help: help.New()}
	for i := range m.values {
		m.values[i] = config.DefaultMoodScore
	}
	return m
}

func (m MoodModel) Init() tea.Cmd { return m.load() }

func (m MoodModel) load() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		entries, err := repo.RecentMoods(ctx, config.MoodHistoryLimit)
		if err != nil {
			return moodLoadedMsg{err: err}
		}
		avg, err := repo.AverageMood(ctx, config.MoodAverageDays)
		return moodLoadedMsg{entries: entries, average: avg, err: err}
	}
}

func (m MoodModel) save() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	ctx, repo := m.ctx, m.repo
	entry := models.MoodEntry{Mood: m.values[0], Stress: m.values[1], Energy: m.values[2]}
	return func() tea.Msg {
		return moodSavedMsg{err: repo.SaveMood(ctx, entry)}
	}
}

func (m MoodModel) Update(msg tea.Msg) (MoodModel, tea.Cmd) {
	switch msg := msg.(type) {
	case moodLoadedMsg:
		if msg.err != nil {
			util.LogError(m.logger, "load moods", msg.err)
			m.Message = "Could not load mood history"
			return m, nil
		}
		m.history = msg.entries
		m.average = msg.average
		return m, nil
	case moodSavedMsg:
		if msg.err != nil {
			util.LogError(m.logger, "save mood", msg.err)
			m.Message = "Could not save: " + msg.err.Error()
			return m, nil
		}
		m.Message = "Saved today's check-in"
		return m, m.load()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.focus = (m.focus + len(m.values) - 1) % len(m.values)
		case key.Matches(msg, m.keys.Down):
			m.focus = (m.focus + 1) % len(m.values)
		case key.Matches(msg, m.keys.Less):
			m.values[m.focus] = util.Clamp(m.values[m.focus]-1, config.MinMoodScore, config.MaxMoodScore)
		case key.Matches(msg, m.keys.More):
			m.values[m.focus] = util.Clamp(m.values[m.focus]+1, config.MinMoodScore, config.MaxMoodScore)
		case key.Matches(msg, m.keys.Save):
			return m, m.save()
		}
	}
	return m, nil
}

func (m MoodModel) slider(i int) string {
	v := m.values[i]
	bar := strings.Repeat("█", v) + strings.Repeat("░", config.MaxMoodScore-v)
	label := ""
	if i == 0 {
		label = database.MoodLabel(v)
	}
	line := fmt.Sprintf("%-7s %s %s", moodSliders[i], bar, FormatScore(v, label))
	if i == m.focus {
		return m.theme.Focused.Render("▸ " + line)
	}
	return m.theme.Text.Render("  " + line)
}

func (m MoodModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Mood Check-in"))
	b.WriteString("\n\n")
	for i := range m.values {
		b.WriteString(m.slider(i))
		b.WriteString("\n")
	}
	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Success.Render(m.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(m.history) == 0 {
		b.WriteString(m.theme.Dim.Render("No check-ins yet."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.theme.Highlight.Render(fmt.Sprintf("%d-day average: %.1f", config.MoodAverageDays, m.average)))
		b.WriteString("\n")
		for _, e := range m.history {
			line := fmt.Sprintf("%s  mood %2d  stress %2d  energy %2d  %s", e.Date, e.Mood, e.Stress, e.Energy, database.MoodLabel(e.Mood))
			b.WriteString(m.theme.Dim.Render(line))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

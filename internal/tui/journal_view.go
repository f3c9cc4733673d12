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
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

var journalMoods = [...]models.JournalMood{models.MoodHappy, models.MoodNeutral, models.MoodSad}

var moodGlyph = map[models.JournalMood]string{
	models.MoodHappy:   ":)",
	models.MoodNeutral: ":|",
	models.MoodSad:     ":(",
}

type journalLoadedMsg struct {
	entries []models.JournalEntry
	err     error
}

type journalSavedMsg struct {
	entry models.JournalEntry
	err   error
}

// JournalModel is a one-line diary with a mood tag per entry.
type JournalModel struct {
	ctx     context.Context
	repo    database.JournalRepository
	logger  *zap.Logger
	theme   Theme
	keys    inputKeys
	help    help.Model
	input   textinput.Model
	mood    int
	entries []models.JournalEntry
	Message string
}

func NewJournalModel(ctx context.Context, repo database.JournalRepository, logger *zap.Logger, theme Theme) JournalModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "What's on your mind? Use #tags to group entries"
	ti.CharLimit = config.MaxJournalLength
	ti.Width = config.DescriptionWidth
	ti.Focus()
	return JournalModel{
		ctx:    ctx,
		repo:   repo,
		logger: logger,
		theme:  theme,
		keys:   newJournalKeys(),
		help:   help.New(),
		input:  ti,
		mood:   1,
	}
}

func (m JournalModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.load())
}

// Typing reports whether the input holds unsent text.
func (m JournalModel) Typing() bool { return m.input.Value() != "" }

// Mood is the mood the next entry will be saved with.
func (m JournalModel) Mood() models.JournalMood { return journalMoods[m.mood] }

func (m JournalModel) load() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		entries, err := repo.JournalEntries(ctx, config.MaxJournalShown)
		return journalLoadedMsg{entries: entries, err: err}
	}
}

func (m JournalModel) save() tea.Cmd {
	content := strings.TrimSpace(m.input.Value())
	if content == "" || m.repo == nil {
		return nil
	}
	ctx, repo := m.ctx, m.repo
	entry := models.JournalEntry{Content: content, Mood: m.Mood()}
	return func() tea.Msg {
		saved, err := repo.AddJournalEntry(ctx, entry)
		return journalSavedMsg{entry: saved, err: err}
	}
}

func (m JournalModel) Update(msg tea.Msg) (JournalModel, tea.Cmd) {
	switch msg := msg.(type) {
	case journalLoadedMsg:
		if msg.err != nil {
			util.LogError(m.logger, "load journal", msg.err)
			m.Message = "Could not load journal"
			return m, nil
		}
		m.entries = msg.entries
		return m, nil
	case journalSavedMsg:
		if msg.err != nil {
			util.LogError(m.logger, "save journal", msg.err)
			m.Message = "Could not save: " + msg.err.Error()
			return m, nil
		}
		m.input.Reset()
		m.Message = "Entry saved"
		return m, m.load()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.mood = (m.mood + len(journalMoods) - 1) % len(journalMoods)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.mood = (m.mood + 1) % len(journalMoods)
			return m, nil
		case key.Matches(msg, m.keys.Send):
			return m, m.save()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m JournalModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Journal"))
	b.WriteString("\n\n")

	var moods []string
	for i, jm := range journalMoods {
		label := fmt.Sprintf("%s %s", moodGlyph[jm], jm)
		if i == m.mood {
			moods = append(moods, m.theme.ActiveTab.Render(label))
		} else {
			moods = append(moods, m.theme.Tab.Render(label))
		}
	}
	b.WriteString(strings.Join(moods, " "))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.Message != "" {
		b.WriteString(m.theme.Success.Render(m.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(m.entries) == 0 {
		b.WriteString(m.theme.Dim.Render("Your journal is empty."))
		b.WriteString("\n")
	}
	for _, e := range m.entries {
		head := fmt.Sprintf("%s %s", e.Date, moodGlyph[e.Mood])
		if len(e.Tags) > 0 {
			head += "  #" + strings.Join(e.Tags, " #")
		}
		b.WriteString(m.theme.Highlight.Render(head))
		b.WriteString("\n")
		b.WriteString(m.theme.Text.Render("  " + ansi.Truncate(e.Content, config.DescriptionWidth, config.TruncationSuffix)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

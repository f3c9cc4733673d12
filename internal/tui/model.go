package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/umeed/internal/breathing"
	"github.com/akyairhashvil/umeed/internal/companion"
	"github.com/akyairhashvil/umeed/internal/config"
	"github.com/akyairhashvil/umeed/internal/database"
	"github.com/akyairhashvil/umeed/internal/support"
	"github.com/akyairhashvil/umeed/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// View identifies one tab of the main model.
type View int

const (
	ViewBreathing View = iota
	ViewMood
	ViewJournal
	ViewChat
	ViewSupport
	ViewScreen
	viewCount
)

var viewTitles = [...]string{"Breathe", "Mood", "Journal", "Chat", "Support", "Screening"}

func (v View) String() string {
	if v < 0 || v >= viewCount {
		return "unknown"
	}
	return viewTitles[v]
}

func (k globalKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Quit}
}

func (k globalKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type statsMsg struct {
	stats database.SessionStats
	err   error
}

// Options wires the main model to its collaborators. Nil Booker and
// responders get the scripted defaults.
type Options struct {
	Repo      database.Repository
	Registry  *breathing.Registry
	Responder companion.Responder
	Mentor    companion.Responder
	Booker    support.Booker
	Preset    string
	Offline   bool
	Theme     Theme
	Logger    *zap.Logger
}

// MainModel is the root bubbletea model that switches between views.
type MainModel struct {
	ctx       context.Context
	repo      database.Repository
	logger    *zap.Logger
	theme     Theme
	keys      globalKeys
	help      help.Model
	active    View
	breathing BreathingModel
	mood      MoodModel
	journal   JournalModel
	chat      ChatModel
	support   SupportModel
	screen    ScreenModel
	stats     database.SessionStats
	width     int
	height    int
}

func NewMainModel(ctx context.Context, opts Options) (MainModel, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Theme.Name == "" {
		opts.Theme = ThemeByName("default")
	}
	if opts.Responder == nil {
		opts.Responder = companion.NewKeywordResponder()
	}
	if opts.Mentor == nil {
		opts.Mentor = companion.Delayed{Next: support.NewMentorResponder(), Delay: config.MentorReplyDelay}
	}
	if opts.Booker == nil && opts.Repo != nil {
		opts.Booker = support.DelayedBooker{Next: support.NewStoreBooker(opts.Repo), Delay: config.BookingDelay}
	}
	session, err := breathing.NewSession(opts.Registry, opts.Preset)
	if err != nil {
		return MainModel{}, fmt.Errorf("breathing session: %w", err)
	}
	return MainModel{
		ctx:       ctx,
		repo:      opts.Repo,
		logger:    logger,
		theme:     opts.Theme,
		keys:      newGlobalKeys(),
		help:      help.New(),
		breathing: NewBreathingModel(ctx, session, opts.Repo, logger, opts.Theme),
		mood:      NewMoodModel(ctx, opts.Repo, logger, opts.Theme),
		journal:   NewJournalModel(ctx, opts.Repo, logger, opts.Theme),
		chat:      NewChatModel(ctx, opts.Responder, opts.Offline, logger, opts.Theme),
		support:   NewSupportModel(ctx, opts.Booker, opts.Repo, opts.Mentor, logger, opts.Theme),
		screen:    NewScreenModel(logger, opts.Theme),
	}, nil
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(m.mood.Init(), m.journal.Init(), m.chat.Init(), m.support.Init(), m.loadStats())
}

// Active is the view currently shown.
func (m MainModel) Active() View { return m.active }

func (m MainModel) loadStats() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		stats, err := repo.SessionStats(ctx)
		return statsMsg{stats: stats, err: err}
	}
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.breathing = m.breathing.SetWidth(msg.Width)
		m.chat = m.chat.SetWidth(msg.Width)
		m.support = m.support.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil
	case statsMsg:
		if msg.err != nil {
			util.LogError(m.logger, "load session stats", msg.err)
			return m, nil
		}
		m.stats = msg.stats
		return m, nil
	case breathTickMsg:
		m.breathing, cmd = m.breathing.Update(msg)
		return m, cmd
	case sessionRecordedMsg:
		m.breathing, cmd = m.breathing.Update(msg)
		return m, tea.Batch(cmd, m.loadStats())
	case moodLoadedMsg, moodSavedMsg:
		m.mood, cmd = m.mood.Update(msg)
		return m, cmd
	case journalLoadedMsg, journalSavedMsg:
		m.journal, cmd = m.journal.Update(msg)
		return m, cmd
	case appointmentsLoadedMsg, appointmentBookedMsg, appointmentCancelledMsg:
		m.support, cmd = m.support.Update(msg)
		return m, cmd
	case chatReplyMsg:
		var supportCmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		m.support, supportCmd = m.support.Update(msg)
		return m, tea.Batch(cmd, supportCmd)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateActive(msg)
}

// textEntry reports whether the active view takes free text, in which case
// plain letters go to the input rather than the global bindings.
func (m MainModel) textEntry() bool {
	return m.active == ViewJournal || m.active == ViewChat ||
		(m.active == ViewSupport && m.support.TextEntry())
}

func (m MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.breathing = m.breathing.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Quit) && !m.textEntry():
		m.breathing = m.breathing.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.switchTo((m.active + 1) % viewCount), nil
	case key.Matches(msg, m.keys.Prev):
		return m.switchTo((m.active + viewCount - 1) % viewCount), nil
	}
	return m.updateActive(msg)
}

func (m MainModel) switchTo(v View) MainModel {
	if v == m.active {
		return m
	}
	switch m.active {
	case ViewBreathing:
		m.breathing = m.breathing.Close()
	case ViewSupport:
		m.support = m.support.Close()
	}
	m.active = v
	return m
}

func (m MainModel) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case ViewBreathing:
		m.breathing, cmd = m.breathing.Update(msg)
	case ViewMood:
		m.mood, cmd = m.mood.Update(msg)
	case ViewJournal:
		m.journal, cmd = m.journal.Update(msg)
	case ViewChat:
		m.chat, cmd = m.chat.Update(msg)
	case ViewSupport:
		m.support, cmd = m.support.Update(msg)
	case ViewScreen:
		m.screen, cmd = m.screen.Update(msg)
	}
	return m, cmd
}

func (m MainModel) renderTabs() string {
	tabs := make([]string, 0, viewCount)
	for v := View(0); v < viewCount; v++ {
		if v == m.active {
			tabs = append(tabs, m.theme.ActiveTab.Render(v.String()))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(v.String()))
		}
	}
	return strings.Join(tabs, " ")
}

func (m MainModel) renderFooter() string {
	line := fmt.Sprintf("%s %s", config.AppName, versionLabel())
	if m.stats.Completed > 0 {
		total := time.Duration(m.stats.TotalSeconds) * time.Second
		line += fmt.Sprintf("  ·  %d breathing sessions, %s", m.stats.Completed, FormatDuration(total))
	}
	return m.theme.Dim.Render(line) + "\n" + m.help.View(m.keys)
}

func (m MainModel) View() string {
	var body string
	switch m.active {
	case ViewBreathing:
		body = m.breathing.View()
	case ViewMood:
		body = m.mood.View()
	case ViewJournal:
		body = m.journal.View()
	case ViewChat:
		body = m.chat.View()
	case ViewSupport:
		body = m.support.View()
	case ViewScreen:
		body = m.screen.View()
	}
	return m.theme.Base.Render(m.renderTabs() + "\n\n" + body + "\n\n" + m.renderFooter())
}

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/umeed/internal/breathing"
	"github.com/akyairhashvil/umeed/internal/config"
	"github.com/akyairhashvil/umeed/internal/database"
	"github.com/akyairhashvil/umeed/internal/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

// breathTickMsg is one timer tick. gen ties it to the tick chain that
// scheduled it; ticks from an older chain are dropped.
type breathTickMsg struct {
	gen int
	at  time.Time
}

type sessionRecordedMsg struct {
	presetID string
	err      error
}

// BreathingModel is the guided breathing view. It owns one Session and at
// most one pending tick.
type BreathingModel struct {
	ctx     context.Context
	repo    database.SessionRepository
	logger  *zap.Logger
	theme   Theme
	session *breathing.Session
	gen     int
	bar     progress.Model
	phase   progress.Model
	keys    breathingKeys
	help    help.Model
	width   int
	Message string
}

func NewBreathingModel(ctx context.Context, session *breathing.Session, repo database.SessionRepository, logger *zap.Logger, theme Theme) BreathingModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = config.ProgressBarWidth
	phase := progress.New(progress.WithSolidFill(string(theme.Border)), progress.WithoutPercentage())
	phase.Width = config.ProgressBarWidth
	return BreathingModel{
		ctx:     ctx,
		repo:    repo,
		logger:  logger,
		theme:   theme,
		session: session,
		bar:     bar,
		phase:   phase,
		keys:    newBreathingKeys(),
		help:    help.New(),
	}
}

func (m BreathingModel) scheduleTick() tea.Cmd {
	gen := m.gen
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg {
		return breathTickMsg{gen: gen, at: t}
	})
}

// Close stops the timer and discards progress. Any tick still in flight is
// ignored once it arrives.
func (m BreathingModel) Close() BreathingModel {
	m.gen++
	m.session.Reset()
	m.Message = ""
	return m
}

// Running reports whether the exercise is ticking.
func (m BreathingModel) Running() bool { return m.session.Running() }

func (m BreathingModel) SetWidth(w int) BreathingModel {
	m.width = w
	target := config.ProgressBarWidth
	if w > 0 && w < config.CompactModeThreshold {
		target = w / 2
	}
	if target < config.MinProgressWidth {
		target = config.MinProgressWidth
	}
	m.bar.Width = target
	m.phase.Width = target
	return m
}

func (m BreathingModel) Update(msg tea.Msg) (BreathingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case breathTickMsg:
		return m.handleTick(msg)
	case sessionRecordedMsg:
		if msg.err != nil {
			m.logger.Warn("record breathing session", zap.String("preset", msg.presetID), zap.Error(msg.err))
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m BreathingModel) handleTick(msg breathTickMsg) (BreathingModel, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}
	res := m.session.Tick()
	if !res.Advanced {
		return m, nil
	}
	if res.Finished {
		m.gen++
		m.Message = "Exercise complete. Well done."
		return m, m.recordSession()
	}
	return m, m.scheduleTick()
}

func (m BreathingModel) recordSession() tea.Cmd {
	preset, ok := m.session.Preset()
	if !ok || m.repo == nil {
		return nil
	}
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		rec := models.SessionRecord{PresetID: preset.ID, Cycles: preset.Cycles, Seconds: preset.TotalSeconds()}
		return sessionRecordedMsg{presetID: preset.ID, err: repo.RecordSession(ctx, rec)}
	}
}

func (m BreathingModel) handleKey(msg tea.KeyMsg) (BreathingModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		return m.toggle()
	case key.Matches(msg, m.keys.Reset):
		m.gen++
		m.session.Reset()
		m.Message = ""
		return m, nil
	case key.Matches(msg, m.keys.Left):
		return m.selectIndex(m.wrapIndex(-1)), nil
	case key.Matches(msg, m.keys.Right):
		return m.selectIndex(m.wrapIndex(1)), nil
	case key.Matches(msg, m.keys.Pick):
		return m.selectIndex(int(msg.Runes[0]-'1')), nil
	}
	return m, nil
}

func (m BreathingModel) toggle() (BreathingModel, tea.Cmd) {
	if m.session.Running() {
		m.gen++
		m.session.Pause()
		m.Message = "Paused"
		return m, nil
	}
	if !m.session.Start() {
		if m.session.Finished() {
			m.Message = "Exercise complete. Press r to go again."
		}
		return m, nil
	}
	m.gen++
	m.Message = ""
	return m, m.scheduleTick()
}

func (m BreathingModel) currentIndex() int {
	p, ok := m.session.Preset()
	if !ok {
		return -1
	}
	return m.session.Registry().Index(p.ID)
}

func (m BreathingModel) wrapIndex(delta int) int {
	n := m.session.Registry().Len()
	if n == 0 {
		return -1
	}
	i := m.currentIndex() + delta
	return ((i % n) + n) % n
}

func (m BreathingModel) selectIndex(i int) BreathingModel {
	p, ok := m.session.Registry().At(i)
	if !ok {
		m.Message = fmt.Sprintf("No preset %d", i+1)
		return m
	}
	if err := m.session.SelectPreset(p.ID); err != nil {
		m.Message = err.Error()
		return m
	}
	m.gen++
	m.Message = ""
	return m
}

func (m BreathingModel) phaseColor(p models.Phase) lipgloss.Color {
	switch p {
	case models.PhaseHold:
		return m.theme.Hold
	case models.PhaseExhale:
		return m.theme.Exhale
	case models.PhasePause:
		return m.theme.Pause
	}
	return m.theme.Inhale
}

// circle grows on inhale and hold, shrinks on exhale.
func (m BreathingModel) circle(state models.TimerState) string {
	width, pad := 20, 1
	switch state.Phase {
	case models.PhaseInhale, models.PhaseHold:
		width, pad = 24, 2
	case models.PhaseExhale:
		width, pad = 16, 0
	}
	if !state.Running && breathing.Progress(state) == 0 {
		width, pad = 20, 1
	}
	label := breathing.Instruction(state.Phase)
	count := fmt.Sprintf("%d", m.session.Remaining())
	if state.Finished() {
		label, count = "Done", "✓"
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.phaseColor(state.Phase)).
		Foreground(m.phaseColor(state.Phase)).
		Bold(true).
		Width(width).
		Padding(pad, 0).
		Align(lipgloss.Center).
		Render(label + "\n" + count)
}

func (m BreathingModel) buttonLabel(state models.TimerState) string {
	switch {
	case state.Finished():
		return "Done"
	case state.Running:
		return "Pause"
	case breathing.Progress(state) > 0:
		return "Resume"
	}
	return "Start"
}

func (m BreathingModel) presetList(active string) string {
	var b strings.Builder
	descWidth := config.DescriptionWidth
	if m.width > 0 && m.width < config.CompactModeThreshold {
		descWidth = m.width / 2
	}
	for i, p := range m.session.Registry().Presets() {
		marker := "  "
		style := m.theme.Text
		if p.ID == active {
			marker = "▸ "
			style = m.theme.Focused
		}
		pat := FormatPattern(p.Pattern.Inhale, p.Pattern.Hold, p.Pattern.Exhale, p.Pattern.Pause)
		line := fmt.Sprintf("%s%d. %s  %s ×%d", marker, i+1, p.Name, pat, p.Cycles)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
		if p.Description != "" {
			b.WriteString(m.theme.Dim.Render("     " + ansi.Truncate(p.Description, descWidth, config.TruncationSuffix)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m BreathingModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Guided Breathing"))
	b.WriteString("\n\n")

	preset, ok := m.session.Preset()
	b.WriteString(m.presetList(preset.ID))
	b.WriteString("\n")
	if !ok {
		b.WriteString(m.theme.Dim.Render("Pick a preset with 1-9 to begin."))
		return b.String()
	}

	state := m.session.State()
	b.WriteString(m.circle(state))
	b.WriteString("\n")
	b.WriteString(m.phase.ViewAs(breathing.PhaseProgress(state) / 100))
	b.WriteString("\n\n")

	pct := breathing.Progress(state)
	b.WriteString(m.theme.Text.Render(fmt.Sprintf("Cycle %d of %d", m.session.Cycle(), preset.Cycles)))
	b.WriteString("   ")
	b.WriteString(m.theme.Highlight.Render(fmt.Sprintf("%.0f%% Complete", pct)))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(pct / 100))
	b.WriteString("\n")
	total := time.Duration(preset.TotalSeconds()) * config.TickInterval
	b.WriteString(m.theme.Dim.Render(fmt.Sprintf("[%s]  total %s", m.buttonLabel(state), FormatDuration(total))))
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Success.Render(m.Message))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Dim.Render("Sit comfortably, follow the circle, and let your breath lead."))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

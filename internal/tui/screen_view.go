package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/umeed/internal/assessment"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// ScreenModel walks through one questionnaire a question at a time.
type ScreenModel struct {
	logger  *zap.Logger
	theme   Theme
	keys    screenKeys
	help    help.Model
	ids     []string
	current int
	answers []int
	result  *assessment.Result
}

func NewScreenModel(logger *zap.Logger, theme Theme) ScreenModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return ScreenModel{logger: logger, theme: theme, keys: newScreenKeys(), help: help.New(), ids: assessment.IDs()}
}

func (m ScreenModel) active() assessment.Assessment {
	a, err := assessment.Lookup(m.ids[m.current])
	if err != nil {
		m.logger.Error("lookup assessment", zap.String("id", m.ids[m.current]), zap.Error(err))
	}
	return a
}

// Result is the scored questionnaire once every question is answered.
func (m ScreenModel) Result() (assessment.Result, bool) {
	if m.result == nil {
		return assessment.Result{}, false
	}
	return *m.result, true
}

func (m ScreenModel) restart() ScreenModel {
	m.answers = nil
	m.result = nil
	return m
}

func (m ScreenModel) Update(msg tea.Msg) (ScreenModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(m.ids) == 0 {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Switch):
		delta := 1
		if km.String() == "left" {
			delta = -1
		}
		m.current = ((m.current+delta)%len(m.ids) + len(m.ids)) % len(m.ids)
		return m.restart(), nil
	case key.Matches(km, m.keys.Restart):
		return m.restart(), nil
	case key.Matches(km, m.keys.Back):
		if m.result == nil && len(m.answers) > 0 {
			m.answers = m.answers[:len(m.answers)-1]
		}
	case key.Matches(km, m.keys.Answer):
		if m.result != nil {
			return m, nil
		}
		m.answers = append(m.answers, int(km.Runes[0]-'0'))
		a := m.active()
		if len(m.answers) == len(a.Questions) {
			res, err := a.Score(m.answers)
			if err != nil {
				m.logger.Error("score assessment", zap.String("id", a.ID), zap.Error(err))
				return m.restart(), nil
			}
			m.result = &res
		}
	}
	return m, nil
}

func (m ScreenModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Self-Assessment"))
	b.WriteString("\n\n")
	if len(m.ids) == 0 {
		return b.String()
	}

	var tabs []string
	for i, id := range m.ids {
		a, _ := assessment.Lookup(id)
		if i == m.current {
			tabs = append(tabs, m.theme.ActiveTab.Render(a.Title))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(a.Title))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	a := m.active()
	if m.result != nil {
		b.WriteString(m.renderResult(*m.result))
	} else {
		q := a.Questions[len(m.answers)]
		b.WriteString(m.theme.Dim.Render(fmt.Sprintf("Question %d of %d. Over the last 2 weeks, how often have you been bothered by:", len(m.answers)+1, len(a.Questions))))
		b.WriteString("\n")
		b.WriteString(m.theme.Focused.Render(q.Text))
		b.WriteString("\n\n")
		for _, opt := range assessment.Options {
			b.WriteString(m.theme.Text.Render(fmt.Sprintf("  %d  %s", opt.Value, opt.Label)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Dim.Render("This screening is not a diagnosis."))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m ScreenModel) renderResult(r assessment.Result) string {
	var b strings.Builder
	style := m.theme.Success
	if r.NeedsCrisisSupport {
		style = m.theme.Danger
	} else if r.Level != assessment.LevelMinimal && r.Level != assessment.LevelMild {
		style = m.theme.Warning
	}
	b.WriteString(style.Render(fmt.Sprintf("Score %d/%d: %s", r.Score, r.MaxScore, r.Level)))
	b.WriteString("\n")
	b.WriteString(m.theme.Text.Render(r.Description))
	b.WriteString("\n\n")
	for _, rec := range r.Recommendations {
		b.WriteString(m.theme.Text.Render("• " + rec))
		b.WriteString("\n")
	}
	if r.NeedsCrisisSupport {
		b.WriteString("\n")
		b.WriteString(m.theme.Danger.Render("Please reach out now:"))
		b.WriteString("\n")
		for _, c := range assessment.CrisisContacts {
			b.WriteString(m.theme.Text.Render("  " + c))
			b.WriteString("\n")
		}
	}
	return b.String()
}

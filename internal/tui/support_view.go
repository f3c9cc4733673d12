package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/umeed/internal/companion"
	"github.com/akyairhashvil/umeed/internal/config"
	"github.com/akyairhashvil/umeed/internal/database"
	"github.com/akyairhashvil/umeed/internal/models"
	"github.com/akyairhashvil/umeed/internal/support"
	"github.com/akyairhashvil/umeed/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"
)

type supportMode int

const (
	supportBrowse supportMode = iota
	supportSearch
	supportBook
	supportChat
)

type appointmentsLoadedMsg struct {
	list []models.Appointment
	err  error
}

type appointmentBookedMsg struct {
	appt models.Appointment
	err  error
}

type appointmentCancelledMsg struct{ err error }

// SupportModel browses the counselor and mentor directories, books
// sessions and opens mentor chats.
type SupportModel struct {
	ctx          context.Context
	booker       support.Booker
	repo         database.AppointmentRepository
	responder    companion.Responder
	logger       *zap.Logger
	theme        Theme
	keys         supportKeys
	bookKeys     bookingKeys
	help         help.Model
	now          func() time.Time
	kind         models.ProviderKind
	search       textinput.Model
	specialty    int // -1 shows every specialty
	cursor       int
	mode         supportMode
	slot         int
	sessionType  int
	day          int // days after today
	booking      bool
	appointments []models.Appointment
	chat         ChatModel
	chatSeq      int
	width        int
	Message      string
}

func NewSupportModel(ctx context.Context, booker support.Booker, repo database.AppointmentRepository,
	responder companion.Responder, logger *zap.Logger, theme Theme) SupportModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "name, place or specialty"
	ti.CharLimit = 40
	ti.Width = 30
	return SupportModel{
		ctx:       ctx,
		booker:    booker,
		repo:      repo,
		responder: responder,
		logger:    logger,
		theme:     theme,
		keys:      newSupportKeys(),
		bookKeys:  newBookingKeys(),
		help:      help.New(),
		now:       time.Now,
		kind:      models.KindCounselor,
		search:    ti,
		specialty: -1,
	}
}

func (m SupportModel) Init() tea.Cmd { return m.load() }

// TextEntry reports whether keys are going to a text input.
func (m SupportModel) TextEntry() bool {
	return m.mode == supportSearch || m.mode == supportChat
}

// Close returns to the directory listing. The mentor chat is kept so it
// can be reopened.
func (m SupportModel) Close() SupportModel {
	m.mode = supportBrowse
	m.search.Blur()
	return m
}

func (m SupportModel) SetWidth(w int) SupportModel {
	m.width = w
	m.chat = m.chat.SetWidth(w)
	return m
}

func (m SupportModel) load() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		list, err := repo.Appointments(ctx, config.AppointmentLimit)
		return appointmentsLoadedMsg{list: list, err: err}
	}
}

func (m SupportModel) specialties() []string {
	if m.kind == models.KindMentor {
		return support.MentorSpecialties
	}
	return support.CounselorSpecialties
}

func (m SupportModel) filter() support.Filter {
	f := support.Filter{Query: m.search.Value()}
	if list := m.specialties(); m.specialty >= 0 && m.specialty < len(list) {
		f.Specialty = list[m.specialty]
	}
	return f
}

func (m SupportModel) counselors() []models.Counselor {
	return support.FilterCounselors(support.Counselors(), m.filter())
}

func (m SupportModel) mentors() []models.Mentor {
	return support.FilterMentors(support.Mentors(), m.filter())
}

func (m SupportModel) count() int {
	if m.kind == models.KindMentor {
		return len(m.mentors())
	}
	return len(m.counselors())
}

// selected returns the highlighted provider's id, name and bookable slots.
func (m SupportModel) selected() (id, name string, slots []string, ok bool) {
	if m.kind == models.KindMentor {
		list := m.mentors()
		if m.cursor < len(list) {
			mt := list[m.cursor]
			return mt.ID, mt.Name, mt.Availability, true
		}
		return "", "", nil, false
	}
	list := m.counselors()
	if m.cursor < len(list) {
		c := list[m.cursor]
		return c.ID, c.Name, c.Slots, true
	}
	return "", "", nil, false
}

func (m SupportModel) clampCursor() SupportModel {
	if n := m.count(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

func (m SupportModel) bookingDate() string {
	return m.now().AddDate(0, 0, m.day).Format(config.DateLayout)
}

func (m SupportModel) request() (support.Request, bool) {
	id, _, slots, ok := m.selected()
	if !ok || len(slots) == 0 {
		return support.Request{}, false
	}
	return support.Request{
		Kind:       m.kind,
		ProviderID: id,
		Date:       m.bookingDate(),
		Slot:       slots[m.slot%len(slots)],
		Type:       models.SessionTypes[m.sessionType],
	}, true
}

func (m SupportModel) book() (SupportModel, tea.Cmd) {
	req, ok := m.request()
	if !ok || m.booking || m.booker == nil {
		return m, nil
	}
	m.booking = true
	m.Message = "Confirming booking..."
	ctx, booker := m.ctx, m.booker
	return m, func() tea.Msg {
		appt, err := booker.Book(ctx, req)
		return appointmentBookedMsg{appt: appt, err: err}
	}
}

func (m SupportModel) cancelNext() (SupportModel, tea.Cmd) {
	if m.repo == nil {
		return m, nil
	}
	for _, a := range m.appointments {
		if a.Status != models.StatusUpcoming {
			continue
		}
		ctx, repo, id := m.ctx, m.repo, a.ID
		return m, func() tea.Msg {
			return appointmentCancelledMsg{err: repo.CancelAppointment(ctx, id)}
		}
	}
	m.Message = "No upcoming appointments to cancel."
	return m, nil
}

func (m SupportModel) openChat() (SupportModel, tea.Cmd) {
	if m.kind != models.KindMentor {
		m.Message = "Chat is available with peer mentors."
		return m, nil
	}
	list := m.mentors()
	if m.cursor >= len(list) {
		return m, nil
	}
	mentor := list[m.cursor]
	if m.chatSeq == 0 || m.chat.title != "Chat with "+mentor.Name {
		m.chatSeq++
		m.chat = newMentorChat(m.ctx, m.chatSeq, mentor, m.responder, m.logger, m.theme).SetWidth(m.width)
	}
	m.mode = supportChat
	return m, m.chat.Init()
}

func bookingProblem(err error) string {
	switch {
	case errors.Is(err, database.ErrSlotTaken):
		return "that slot is already booked, pick another"
	case errors.Is(err, support.ErrBookingWindow):
		return fmt.Sprintf("pick a date within the next %d days", config.MaxBookingDays)
	case errors.Is(err, context.Canceled):
		return "booking was cancelled"
	}
	return err.Error()
}

func (m SupportModel) Update(msg tea.Msg) (SupportModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case appointmentsLoadedMsg:
		if msg.err != nil {
			util.LogError(m.logger, "load appointments", msg.err)
			m.Message = "Could not load appointments."
			return m, nil
		}
		m.appointments = msg.list
		return m, nil
	case appointmentBookedMsg:
		m.booking = false
		if msg.err != nil {
			util.LogError(m.logger, "book appointment", msg.err)
			m.Message = "Booking failed: " + bookingProblem(msg.err) + "."
			return m, nil
		}
		a := msg.appt
		m.Message = fmt.Sprintf("Booked %s on %s at %s (%s).", a.ProviderName, a.Date, a.Time, a.Type)
		m.mode = supportBrowse
		return m, m.load()
	case appointmentCancelledMsg:
		if msg.err != nil {
			util.LogError(m.logger, "cancel appointment", msg.err)
			m.Message = "Could not cancel the appointment."
			return m, nil
		}
		m.Message = "Appointment cancelled."
		return m, m.load()
	case chatReplyMsg:
		if m.chatSeq == 0 {
			return m, nil
		}
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch m.mode {
		case supportSearch:
			return m.updateSearch(msg)
		case supportBook:
			return m.updateBooking(msg)
		case supportChat:
			if key.Matches(msg, m.keys.Back) {
				m.mode = supportBrowse
				return m, nil
			}
			m.chat, cmd = m.chat.Update(msg)
			return m, cmd
		}
		return m.updateBrowse(msg)
	}
	switch m.mode {
	case supportSearch:
		m.search, cmd = m.search.Update(msg)
	case supportChat:
		m.chat, cmd = m.chat.Update(msg)
	}
	return m, cmd
}

func (m SupportModel) updateBrowse(msg tea.KeyMsg) (SupportModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Switch):
		if m.kind == models.KindCounselor {
			m.kind = models.KindMentor
		} else {
			m.kind = models.KindCounselor
		}
		m.cursor, m.specialty = 0, -1
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m = m.clampCursor()
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m = m.clampCursor()
	case key.Matches(msg, m.keys.Search):
		m.mode = supportSearch
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Specialty):
		m.specialty++
		if m.specialty >= len(m.specialties()) {
			m.specialty = -1
		}
		m.cursor = 0
	case key.Matches(msg, m.keys.Book):
		if _, ok := m.request(); ok {
			m.mode = supportBook
			m.slot, m.sessionType, m.day = 0, 0, 1
			m.Message = ""
		}
	case key.Matches(msg, m.keys.Chat):
		return m.openChat()
	case key.Matches(msg, m.keys.Cancel):
		return m.cancelNext()
	}
	return m, nil
}

func (m SupportModel) updateSearch(msg tea.KeyMsg) (SupportModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.search.Reset()
		m.search.Blur()
		m.mode = supportBrowse
		m.cursor = 0
		return m, nil
	case tea.KeyEnter:
		m.search.Blur()
		m.mode = supportBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m SupportModel) updateBooking(msg tea.KeyMsg) (SupportModel, tea.Cmd) {
	_, _, slots, _ := m.selected()
	switch {
	case key.Matches(msg, m.bookKeys.Back):
		if !m.booking {
			m.mode = supportBrowse
		}
	case key.Matches(msg, m.bookKeys.Slot):
		if n := len(slots); n > 0 {
			if msg.Type == tea.KeyLeft {
				m.slot = (m.slot + n - 1) % n
			} else {
				m.slot = (m.slot + 1) % n
			}
		}
	case key.Matches(msg, m.bookKeys.Type):
		m.sessionType = (m.sessionType + 1) % len(models.SessionTypes)
	case key.Matches(msg, m.bookKeys.Earlier):
		if m.day > 0 {
			m.day--
		}
	case key.Matches(msg, m.bookKeys.Later):
		if m.day < config.MaxBookingDays {
			m.day++
		}
	case key.Matches(msg, m.bookKeys.Confirm):
		return m.book()
	}
	return m, nil
}

func (m SupportModel) View() string {
	switch m.mode {
	case supportChat:
		return m.chat.View() + "\n" + m.theme.Dim.Render("esc: back to directory")
	case supportBook:
		return m.viewBooking()
	}
	return m.viewDirectory()
}

func (m SupportModel) viewDirectory() string {
	var b strings.Builder
	counselors, mentors := m.theme.Focused.Render("Counselors"), m.theme.Dim.Render("Peer mentors")
	if m.kind == models.KindMentor {
		counselors, mentors = m.theme.Dim.Render("Counselors"), m.theme.Focused.Render("Peer mentors")
	}
	b.WriteString(m.theme.Header.Render("Support") + "  " + counselors + " │ " + mentors + "\n\n")

	specialty := "all"
	if f := m.filter(); f.Specialty != "" {
		specialty = f.Specialty
	}
	if m.mode == supportSearch {
		b.WriteString("Search: " + m.search.View())
	} else {
		query := m.search.Value()
		if query == "" {
			query = "-"
		}
		b.WriteString(m.theme.Dim.Render("Search: " + query))
	}
	b.WriteString(m.theme.Dim.Render("  ·  Specialty: "+specialty) + "\n\n")

	if m.count() == 0 {
		b.WriteString(m.theme.Warning.Render("No matches. Clear the search or pick another specialty."))
		b.WriteString("\n")
	}
	bio := lipgloss.NewStyle().Width(config.DescriptionWidth).Inherit(m.theme.Text)
	if m.kind == models.KindMentor {
		for i, mt := range m.mentors() {
			status := m.theme.Dim.Render("away")
			if mt.Online {
				status = m.theme.Success.Render("online")
			}
			line := fmt.Sprintf("%s, %s, %s  ★ %.1f  %s", mt.Name, mt.Year, mt.College, mt.Rating, status)
			b.WriteString(m.renderRow(i, line))
			if i == m.cursor {
				b.WriteString(m.theme.Dim.Render("    "+strings.Join(mt.Specialties, ", ")) + "\n")
				b.WriteString(bio.Render(mt.Bio) + "\n")
			}
		}
	} else {
		for i, c := range m.counselors() {
			line := fmt.Sprintf("%s, %s, %s  ★ %.1f  ₹%d", c.Name, c.Title, c.Location, c.Rating, c.Fee)
			b.WriteString(m.renderRow(i, line))
			if i == m.cursor {
				b.WriteString(m.theme.Dim.Render(fmt.Sprintf("    %d years · %s · %s",
					c.Experience, strings.Join(c.Specialties, ", "), strings.Join(c.Languages, "/"))) + "\n")
				b.WriteString(bio.Render(c.Bio) + "\n")
			}
		}
	}

	b.WriteString("\n" + m.theme.Header.Render("Your appointments") + "\n")
	b.WriteString(m.viewAppointments())
	if m.Message != "" {
		b.WriteString("\n" + m.theme.Highlight.Render(m.Message))
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m SupportModel) renderRow(i int, line string) string {
	if i == m.cursor {
		return m.theme.Focused.Render("> "+line) + "\n"
	}
	return m.theme.Text.Render("  "+line) + "\n"
}

func (m SupportModel) viewAppointments() string {
	if len(m.appointments) == 0 {
		return m.theme.Dim.Render("No appointments yet. Pick someone and press enter to book.")
	}
	rows := make([][]string, 0, len(m.appointments))
	for _, a := range m.appointments {
		rows = append(rows, []string{a.Date, a.Time, a.ProviderName, string(a.Type), string(a.Status)})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(m.theme.Border)).
		Headers("DATE", "TIME", "WITH", "TYPE", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(m.appointments) || col != 4 {
				return lipgloss.NewStyle().Padding(0, 1)
			}
			switch m.appointments[row].Status {
			case models.StatusUpcoming:
				return m.theme.Highlight.Padding(0, 1)
			case models.StatusCompleted:
				return m.theme.Success.Padding(0, 1)
			}
			return m.theme.Dim.Padding(0, 1)
		})
	return t.Render()
}

func (m SupportModel) viewBooking() string {
	var b strings.Builder
	req, ok := m.request()
	if !ok {
		return m.theme.Warning.Render("Nothing selected to book.")
	}
	_, name, _, _ := m.selected()
	b.WriteString(m.theme.Header.Render("Book a session with "+name) + "\n\n")

	when := "today"
	if m.day == 1 {
		when = "tomorrow"
	} else if m.day > 1 {
		when = fmt.Sprintf("in %d days", m.day)
	}
	fmt.Fprintf(&b, "Date:      %s (%s)\n", req.Date, when)
	fmt.Fprintf(&b, "Time:      ‹ %s ›\n", req.Slot)
	fmt.Fprintf(&b, "Session:   %s\n", req.Type)
	if c, ok := support.Counselor(req.ProviderID); ok && m.kind == models.KindCounselor {
		fmt.Fprintf(&b, "Fee:       ₹%d, paid at the session\n", c.Fee)
	} else {
		b.WriteString("Fee:       free peer session\n")
	}

	if m.booking {
		b.WriteString("\n" + m.theme.Dim.Render("Confirming booking..."))
	} else if m.Message != "" {
		b.WriteString("\n" + m.theme.Warning.Render(m.Message))
	}
	b.WriteString("\n" + m.help.View(m.bookKeys))
	return b.String()
}

package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/umeed/internal/models"
	"github.com/akyairhashvil/umeed/internal/support"
	tea "github.com/charmbracelet/bubbletea"
)

var supportNow = time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC)

func newTestSupport(t *testing.T) SupportModel {
	t.Helper()
	db := setupModelDB(t)
	booker := support.NewStoreBooker(db)
	booker.Now = func() time.Time { return supportNow }
	m := NewSupportModel(context.Background(), booker, db, support.NewMentorResponder(), nil, ThemeByName("default"))
	m.now = func() time.Time { return supportNow }
	return m
}

// runSupport feeds store and chat results back into the model until the
// command chain ends.
func runSupport(t *testing.T, m SupportModel, cmd tea.Cmd) SupportModel {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		switch msg.(type) {
		case appointmentsLoadedMsg, appointmentBookedMsg, appointmentCancelledMsg, chatReplyMsg:
			m, cmd = m.Update(msg)
		default:
			return m
		}
	}
	return m
}

func typeText(m SupportModel, text string) SupportModel {
	for _, r := range text {
		m, _ = m.Update(keyRune(r))
	}
	return m
}

func TestSupportSwitchAndFilter(t *testing.T) {
	m := newTestSupport(t)
	if m.count() != 6 || m.kind != models.KindCounselor {
		t.Fatalf("expected six counselors first, got %d %s", m.count(), m.kind)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.kind != models.KindMentor {
		t.Fatalf("expected mentors after switch")
	}
	m, _ = m.Update(keyRune('f'))
	if got := m.filter().Specialty; got != support.MentorSpecialties[0] || m.count() != 3 {
		t.Fatalf("specialty %q matched %d mentors", got, m.count())
	}

	m, _ = m.Update(keyRune('/'))
	if !m.TextEntry() {
		t.Fatalf("expected search to take text")
	}
	m = typeText(m, "kash")
	if m.count() != 1 {
		t.Fatalf("expected one mentor for kash, got %d", m.count())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.TextEntry() || m.search.Value() != "" || m.count() != 3 {
		t.Fatalf("esc should clear the search, got %q with %d matches", m.search.Value(), m.count())
	}
}

func TestSupportCursorClamped(t *testing.T) {
	m := newTestSupport(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Fatalf("cursor went above the list: %d", m.cursor)
	}
	for i := 0; i < 10; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != 5 {
		t.Fatalf("cursor should stop on the last counselor, got %d", m.cursor)
	}
}

func TestSupportBookingRecordsAppointment(t *testing.T) {
	m := newTestSupport(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != supportBook {
		t.Fatalf("expected booking form")
	}
	if view := m.View(); !strings.Contains(view, "Dr. Meera Gupta") || !strings.Contains(view, "₹800") {
		t.Fatalf("booking form missing provider or fee:\n%s", view)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(keyRune('t'))
	m, _ = m.Update(keyRune('+'))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.booking || cmd == nil {
		t.Fatalf("expected booking in flight")
	}
	if _, again := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); again != nil {
		t.Fatalf("no second booking while one is pending")
	}
	m = runSupport(t, m, cmd)

	if m.mode != supportBrowse || m.booking {
		t.Fatalf("expected directory after confirmation")
	}
	want := "Booked Dr. Meera Gupta on 2024-01-18 at 11:00 AM (video)."
	if m.Message != want {
		t.Fatalf("Message = %q, want %q", m.Message, want)
	}
	if len(m.appointments) != 1 || m.appointments[0].Status != models.StatusUpcoming {
		t.Fatalf("expected one upcoming appointment, got %+v", m.appointments)
	}
	if !strings.Contains(m.View(), "2024-01-18") {
		t.Fatalf("appointments table missing booking")
	}
}

func TestSupportBookingSlotTaken(t *testing.T) {
	m := newTestSupport(t)
	for i := 0; i < 2; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = runSupport(t, m, cmd)
	}
	if !strings.Contains(m.Message, "already booked") || m.mode != supportBook {
		t.Fatalf("expected slot taken message on the form, got %q", m.Message)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != supportBrowse {
		t.Fatalf("esc should leave the form")
	}
}

func TestSupportBookingDayBounds(t *testing.T) {
	m := newTestSupport(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 3; i++ {
		m, _ = m.Update(keyRune('-'))
	}
	if m.day != 0 || m.bookingDate() != "2024-01-16" {
		t.Fatalf("day should stop at today, got %d", m.day)
	}
	for i := 0; i < 40; i++ {
		m, _ = m.Update(keyRune('+'))
	}
	if m.bookingDate() != "2024-02-15" {
		t.Fatalf("day should stop at the booking window, got %s", m.bookingDate())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if req, _ := m.request(); req.Slot != "4:00 PM" {
		t.Fatalf("left should wrap to the last slot, got %q", req.Slot)
	}
}

func TestSupportCancelNextUpcoming(t *testing.T) {
	m := newTestSupport(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = runSupport(t, m, cmd)

	m, cmd = m.Update(keyRune('x'))
	m = runSupport(t, m, cmd)
	if m.Message != "Appointment cancelled." || m.appointments[0].Status != models.StatusCancelled {
		t.Fatalf("expected cancelled appointment, got %q %+v", m.Message, m.appointments)
	}
	m, cmd = m.Update(keyRune('x'))
	if cmd != nil || !strings.HasPrefix(m.Message, "No upcoming") {
		t.Fatalf("expected nothing left to cancel, got %q", m.Message)
	}
}

func TestSupportMentorChat(t *testing.T) {
	m := newTestSupport(t)
	m, _ = m.Update(keyRune('c'))
	if m.mode != supportBrowse || !strings.Contains(m.Message, "peer mentors") {
		t.Fatalf("chat should need a mentor, got %q", m.Message)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(keyRune('c'))
	if m.mode != supportChat || !m.TextEntry() {
		t.Fatalf("expected mentor chat")
	}
	if got := m.chat.messages[0].text; got != support.MentorGreeting("Priya Sharma") {
		t.Fatalf("unexpected greeting %q", got)
	}

	m, _ = m.Update(chatReplyMsg{id: 0, text: "for the companion"})
	if len(m.chat.messages) != 1 {
		t.Fatalf("companion reply leaked into mentor chat")
	}

	m = typeText(m, "exams")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = runSupport(t, m, cmd)
	last := m.chat.messages[len(m.chat.messages)-1]
	if !last.fromBot || !strings.Contains(last.text, "work through this together") {
		t.Fatalf("unexpected mentor reply %+v", last)
	}
	if !strings.Contains(m.View(), "Chat with Priya Sharma") {
		t.Fatalf("chat view missing title")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != supportBrowse {
		t.Fatalf("esc should return to the directory")
	}
	seq := m.chatSeq
	m, _ = m.Update(keyRune('c'))
	if m.chatSeq != seq || len(m.chat.messages) != 3 {
		t.Fatalf("reopening the same mentor should keep the conversation")
	}
}

func TestSupportViewDirectory(t *testing.T) {
	m := newTestSupport(t)
	view := m.View()
	for _, want := range []string{"Dr. Meera Gupta", "Dr. Vikram Pandita", "Your appointments", "No appointments yet"} {
		if !strings.Contains(view, want) {
			t.Fatalf("directory view missing %q", want)
		}
	}
	m, _ = m.Update(keyRune('/'))
	m = typeText(m, "leh")
	if !strings.Contains(m.View(), "No matches") {
		t.Fatalf("expected empty result hint")
	}
}

func TestMainModelSupportSearchTakesLetters(t *testing.T) {
	m := newTestMainModel(t)
	m = m.switchTo(ViewSupport)
	model, _ := m.Update(keyRune('/'))
	m = model.(MainModel)
	model, _ = m.Update(keyRune('q'))
	m = model.(MainModel)
	if got := m.support.search.Value(); got != "q" {
		t.Fatalf("expected q in search, got %q", got)
	}
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = model.(MainModel)
	if m.support.TextEntry() {
		t.Fatalf("leaving the tab should close the search")
	}
}

package tui

import "github.com/charmbracelet/bubbles/key"

// globalKeys work in every view.
type globalKeys struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

func newGlobalKeys() globalKeys {
	return globalKeys{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type breathingKeys struct {
	Toggle key.Binding
	Reset  key.Binding
	Left   key.Binding
	Right  key.Binding
	Pick   key.Binding
}

func newBreathingKeys() breathingKeys {
	return breathingKeys{
		Toggle: key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space", "start/pause")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Left:   key.NewBinding(key.WithKeys("left", "h", "up", "k"), key.WithHelp("←", "prev preset")),
		Right:  key.NewBinding(key.WithKeys("right", "l", "down", "j"), key.WithHelp("→", "next preset")),
		Pick:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "pick preset")),
	}
}

func (k breathingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Left, k.Right, k.Pick}
}

func (k breathingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type moodKeys struct {
	Up   key.Binding
	Down key.Binding
	Less key.Binding
	More key.Binding
	Save key.Binding
}

func newMoodKeys() moodKeys {
	return moodKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "prev slider")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next slider")),
		Less: key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←", "lower")),
		More: key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→", "raise")),
		Save: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save today")),
	}
}

func (k moodKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Less, k.More, k.Save}
}

func (k moodKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type inputKeys struct {
	Up   key.Binding
	Down key.Binding
	Send key.Binding
}

func newJournalKeys() inputKeys {
	return inputKeys{
		Up:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev mood")),
		Down: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next mood")),
		Send: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save entry")),
	}
}

func newChatKeys() inputKeys {
	return inputKeys{
		Up:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "quick reply")),
		Down: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "quick reply")),
		Send: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	}
}

func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Send}
}

func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type screenKeys struct {
	Switch  key.Binding
	Answer  key.Binding
	Back    key.Binding
	Restart key.Binding
}

func newScreenKeys() screenKeys {
	return screenKeys{
		Switch:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "questionnaire")),
		Answer:  key.NewBinding(key.WithKeys("0", "1", "2", "3"), key.WithHelp("0-3", "answer")),
		Back:    key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "previous")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	}
}

func (k screenKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Answer, k.Back, k.Restart}
}

func (k screenKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type supportKeys struct {
	Switch    key.Binding
	Up        key.Binding
	Down      key.Binding
	Search    key.Binding
	Specialty key.Binding
	Book      key.Binding
	Chat      key.Binding
	Cancel    key.Binding
	Back      key.Binding
}

func newSupportKeys() supportKeys {
	return supportKeys{
		Switch:    key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "counselors/mentors")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "prev")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Specialty: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "specialty")),
		Book:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "book")),
		Chat:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chat with mentor")),
		Cancel:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cancel next booking")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (k supportKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Up, k.Down, k.Search, k.Specialty, k.Book, k.Chat, k.Cancel}
}

func (k supportKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type bookingKeys struct {
	Slot    key.Binding
	Type    key.Binding
	Earlier key.Binding
	Later   key.Binding
	Confirm key.Binding
	Back    key.Binding
}

func newBookingKeys() bookingKeys {
	return bookingKeys{
		Slot:    key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "time slot")),
		Type:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "session type")),
		Earlier: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "earlier day")),
		Later:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "later day")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (k bookingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Slot, k.Type, k.Earlier, k.Later, k.Confirm, k.Back}
}

func (k bookingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

package tui

import (
	"context"
	"strings"

	"github.com/akyairhashvil/umeed/internal/companion"
	"github.com/akyairhashvil/umeed/internal/config"
	"github.com/akyairhashvil/umeed/internal/models"
	"github.com/akyairhashvil/umeed/internal/support"
	"github.com/akyairhashvil/umeed/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type chatMessage struct {
	fromBot bool
	text    string
}

// chatReplyMsg carries a reply back to the chat with the matching id.
type chatReplyMsg struct {
	id   int
	text string
	err  error
}

// ChatModel is a scripted chat: the companion on its own tab, or a peer
// mentor opened from the support tab. Replies arrive asynchronously from
// the Responder; only one request is outstanding at a time.
type ChatModel struct {
	ctx       context.Context
	id        int
	title     string
	status    string
	speaker   string
	quickList []string
	responder companion.Responder
	logger    *zap.Logger
	theme     Theme
	keys      inputKeys
	help      help.Model
	input     textinput.Model
	messages  []chatMessage
	quick     int
	pending   bool
	width     int
}

// NewChatModel returns the companion chat.
func NewChatModel(ctx context.Context, responder companion.Responder, offline bool, logger *zap.Logger, theme Theme) ChatModel {
	status := "(online)"
	if offline {
		status = "(offline mode)"
	}
	m := newChat(ctx, 0, responder, companion.Greeting, logger, theme)
	m.title, m.status, m.speaker = "UmeedConnect", status, "umeed"
	m.quickList = companion.QuickReplies
	return m
}

// newMentorChat returns a chat with a peer mentor. id must differ from
// every other live chat so replies reach the right conversation.
func newMentorChat(ctx context.Context, id int, mentor models.Mentor, responder companion.Responder, logger *zap.Logger, theme Theme) ChatModel {
	m := newChat(ctx, id, responder, support.MentorGreeting(mentor.Name), logger, theme)
	m.title = "Chat with " + mentor.Name
	m.status = "(away, replies may be slow)"
	if mentor.Online {
		m.status = "(online)"
	}
	m.speaker = "mentor"
	if f := strings.Fields(mentor.Name); len(f) > 0 {
		m.speaker = f[0]
	}
	m.quickList = support.MentorQuickReplies
	return m
}

func newChat(ctx context.Context, id int, responder companion.Responder, greeting string, logger *zap.Logger, theme Theme) ChatModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "Type your message..."
	ti.CharLimit = config.MaxChatLength
	ti.Width = config.DescriptionWidth
	ti.Focus()
	return ChatModel{
		ctx:       ctx,
		id:        id,
		responder: responder,
		logger:    logger,
		theme:     theme,
		keys:      newChatKeys(),
		help:      help.New(),
		input:     ti,
		messages:  []chatMessage{{fromBot: true, text: greeting}},
		quick:     -1,
	}
}

func (m ChatModel) Init() tea.Cmd { return textinput.Blink }

// Typing reports whether the input holds unsent text.
func (m ChatModel) Typing() bool { return m.input.Value() != "" }

// Pending reports whether a reply is outstanding.
func (m ChatModel) Pending() bool { return m.pending }

func (m ChatModel) SetWidth(w int) ChatModel {
	m.width = w
	return m
}

func (m ChatModel) appendMessage(msg chatMessage) ChatModel {
	m.messages = append(m.messages, msg)
	if over := len(m.messages) - config.MaxChatMessages; over > 0 {
		m.messages = append([]chatMessage(nil), m.messages[over:]...)
	}
	return m
}

func (m ChatModel) send() (ChatModel, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.pending || m.responder == nil {
		return m, nil
	}
	m = m.appendMessage(chatMessage{text: text})
	m.input.Reset()
	m.quick = -1
	m.pending = true
	ctx, responder, id := m.ctx, m.responder, m.id
	return m, func() tea.Msg {
		reply, err := responder.Reply(ctx, text)
		return chatReplyMsg{id: id, text: reply, err: err}
	}
}

func (m ChatModel) cycleQuick(delta int) ChatModel {
	n := len(m.quickList)
	if n == 0 {
		return m
	}
	if m.quick < 0 && delta < 0 {
		m.quick = 0
	}
	m.quick = ((m.quick+delta)%n + n) % n
	m.input.SetValue(m.quickList[m.quick])
	m.input.CursorEnd()
	return m
}

func (m ChatModel) Update(msg tea.Msg) (ChatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.pending = false
		if msg.err != nil {
			util.LogError(m.logger, "chat reply", msg.err)
			return m.appendMessage(chatMessage{fromBot: true, text: "Sorry, I couldn't respond just now. Please try again."}), nil
		}
		return m.appendMessage(chatMessage{fromBot: true, text: msg.text}), nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			return m.cycleQuick(-1), nil
		case key.Matches(msg, m.keys.Down):
			return m.cycleQuick(1), nil
		case key.Matches(msg, m.keys.Send):
			return m.send()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ChatModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render(m.title + "  " + m.status))
	b.WriteString("\n\n")

	width := config.DescriptionWidth
	if m.width > 0 && m.width < config.CompactModeThreshold {
		width = m.width - 4
	}
	bubble := lipgloss.NewStyle().Width(width)
	for _, msg := range m.messages {
		if msg.fromBot {
			b.WriteString(m.theme.Highlight.Render(m.speaker))
		} else {
			b.WriteString(m.theme.Focused.Render("you"))
		}
		b.WriteString("\n")
		b.WriteString(bubble.Inherit(m.theme.Text).Render(msg.text))
		b.WriteString("\n\n")
	}
	if m.pending {
		b.WriteString(m.theme.Dim.Render(m.speaker + " is typing..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.theme.Dim.Render("Quick replies: " + strings.Join(m.quickList, " · ")))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

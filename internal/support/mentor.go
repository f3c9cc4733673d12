package support

import (
	"context"
	"fmt"
	"strings"

	"github.com/akyairhashvil/umeed/internal/companion"
)

const mentorReply = "Thank you for sharing that with me. I understand how you're feeling. " +
	"Let's work through this together."

// MentorQuickReplies are the one-key openers offered in a mentor chat.
var MentorQuickReplies = []string{
	"I'm stressed about exams",
	"I feel lonely on campus",
	"How do you manage your time?",
}

// MentorGreeting opens a chat with the named mentor.
func MentorGreeting(name string) string {
	return fmt.Sprintf("Hi! I'm %s. I'm here to support you. How are you feeling today?", name)
}

// MentorResponder is the scripted peer mentor. It answers every message
// with the same encouragement.
type MentorResponder struct {
	Text string
}

// NewMentorResponder returns a responder with the default reply.
func NewMentorResponder() MentorResponder {
	return MentorResponder{Text: mentorReply}
}

// Reply implements companion.Responder.
func (m MentorResponder) Reply(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", companion.ErrEmptyMessage
	}
	return m.Text, nil
}

var _ companion.Responder = MentorResponder{}

// Package companion is the scripted support chat. Replies come from a
// Responder; the shipped one matches keywords against canned topics and
// never calls out to a model or a network service.
package companion

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrEmptyMessage = errors.New("message is empty")

// Responder produces a reply for a user message.
//
//go:generate mockgen -source=companion.go -destination=companionmock/responder.go -package=companionmock
type Responder interface {
	Reply(ctx context.Context, text string) (string, error)
}

// Topic is one keyword rule. The first topic with a matching keyword wins.
type Topic struct {
	Name     string
	Keywords []string
	Reply    string
}

// KeywordResponder answers from an ordered list of topics.
type KeywordResponder struct {
	Topics   []Topic
	Fallback string
}

// NewKeywordResponder returns a responder loaded with the default topics.
func NewKeywordResponder() *KeywordResponder {
	return &KeywordResponder{Topics: DefaultTopics(), Fallback: fallbackReply}
}

// Reply implements Responder.
func (k *KeywordResponder) Reply(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	input := strings.ToLower(strings.TrimSpace(text))
	if input == "" {
		return "", ErrEmptyMessage
	}
	if t, ok := k.Match(input); ok {
		return t.Reply, nil
	}
	return k.Fallback, nil
}

// Match returns the first topic whose keyword occurs in input.
func (k *KeywordResponder) Match(input string) (Topic, bool) {
	input = strings.ToLower(input)
	for _, t := range k.Topics {
		for _, kw := range t.Keywords {
			if strings.Contains(input, kw) {
				return t, true
			}
		}
	}
	return Topic{}, false
}

// Delayed wraps a Responder with a fixed response latency.
type Delayed struct {
	Next  Responder
	Delay time.Duration
}

// Reply waits for Delay, then defers to Next. Cancelling ctx aborts the wait.
func (d Delayed) Reply(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyMessage
	}
	if d.Delay > 0 {
		t := time.NewTimer(d.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-t.C:
		}
	}
	return d.Next.Reply(ctx, text)
}

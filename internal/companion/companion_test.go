package companion

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/umeed/internal/companion/companionmock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordResponderTopics(t *testing.T) {
	k := NewKeywordResponder()
	tests := []struct {
		input string
		topic string
	}{
		{"I need crisis help", "crisis"},
		{"thinking about SUICIDE", "crisis"},
		{"TeleManas support", "telemanas"},
		{"SMS reminders", "sms"},
		{"my internet keeps dropping", "offline"},
		{"Feeling anxious", "anxiety"},
		{"Connect with mentor", "mentor"},
		{"anxious and in crisis", "crisis"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, ok := k.Match(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.topic, topic.Name)

			reply, err := k.Reply(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, topic.Reply, reply)
		})
	}
}

func TestKeywordResponderFallback(t *testing.T) {
	k := NewKeywordResponder()
	reply, err := k.Reply(context.Background(), "hello there")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reply, "Thank you for reaching out"))
}

func TestKeywordResponderEmpty(t *testing.T) {
	_, err := NewKeywordResponder().Reply(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestKeywordResponderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewKeywordResponder().Reply(ctx, "hi")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDelayedWaitsThenDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := companionmock.NewMockResponder(ctrl)
	next.EXPECT().Reply(gomock.Any(), "hi").Return("hello", nil)

	d := Delayed{Next: next, Delay: 20 * time.Millisecond}
	start := time.Now()
	reply, err := d.Reply(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello", reply)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestDelayedCancelSkipsDelegate(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := companionmock.NewMockResponder(ctrl)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	_, err := Delayed{Next: next, Delay: time.Minute}.Reply(ctx, "hi")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestDelayedRejectsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := companionmock.NewMockResponder(ctrl)
	_, err := Delayed{Next: next, Delay: time.Minute}.Reply(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestDelayedPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := companionmock.NewMockResponder(ctrl)
	boom := errors.New("boom")
	next.EXPECT().Reply(gomock.Any(), gomock.Any()).Return("", boom)

	_, err := Delayed{Next: next}.Reply(context.Background(), "hi")
	assert.ErrorIs(t, err, boom)
}

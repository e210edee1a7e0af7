package mailer

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingSender captures every message handed to it.
type recordingSender struct {
	mu   sync.Mutex
	sent []Message
	err  error
}

func (s *recordingSender) Send(msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.sent...)
}

func TestMailer_DeliversQueuedMessages(t *testing.T) {
	sender := &recordingSender{}
	m := New(sender)

	m.Enqueue(Message{To: "alice@example.com", Subject: "New task assigned.", Body: "hello"})
	m.Enqueue(Message{To: "bob@example.com", Subject: "Task updated.", Body: "hi"})
	m.Close()

	msgs := sender.messages()
	require.Len(t, msgs, 2)
	require.Equal(t, "alice@example.com", msgs[0].To)
	require.Equal(t, "New task assigned.", msgs[0].Subject)
}

func TestMailer_DeliveryFailureIsSwallowed(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	m := New(sender)

	// Must not panic or propagate; the failure only gets logged.
	m.Enqueue(Message{To: "alice@example.com", Subject: "s", Body: "b"})
	m.Close()

	require.Empty(t, sender.messages())
}

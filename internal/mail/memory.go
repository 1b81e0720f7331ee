package mail

import (
	"context"
	"sync"
)

// MemorySender is a simple in-memory implementation of the Sender interface
// used for unit testing receipt dispatch without a live transport.
type MemorySender struct {
	mu   sync.Mutex
	sent []Message
	err  error
}

// NewMemorySender instantiates the in-memory transport.
func NewMemorySender() *MemorySender {
	return &MemorySender{}
}

// WithError configures the transport to fail subsequent Send calls with the
// provided error.
func (m *MemorySender) WithError(err error) *MemorySender {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// Send records the message instead of delivering it.
func (m *MemorySender) Send(_ context.Context, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

// Sent returns a copy of every recorded message in send order.
func (m *MemorySender) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.sent))
	copy(out, m.sent)
	return out
}

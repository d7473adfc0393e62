// Package bus provides in-process pub/sub for runtime notifications.
// Configuration rebinds and session lifecycle changes are delivered as
// events to subscribers instead of being mutated in place.
package bus

import (
	"log/slog"
	"sync"
	"time"
)

// Topic names.
const (
	TopicConfigChanged    = "config.changed"
	TopicSessionCompleted = "session.completed"
)

// ConfigChangedPayload announces that a community's settings were rebound.
// An empty CommunityID means process-wide configuration changed.
type ConfigChangedPayload struct {
	CommunityID string
}

// SessionCompletedPayload announces a session reaching a terminal state.
type SessionCompletedPayload struct {
	SessionID string
	State     string
}

// Message is one published event.
type Message struct {
	Topic   string
	Payload any
	At      time.Time
}

// Bus fans published messages out to topic subscribers. Publishing never
// blocks: a subscriber with a full buffer misses the message and a warning
// is logged.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string][]chan Message
	closed bool
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[string][]chan Message)}
}

// Subscribe registers for a topic and returns the receive channel plus an
// unsubscribe function. buffer bounds how far the subscriber may lag.
func (b *Bus) Subscribe(topic string, buffer int) (<-chan Message, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Message, buffer)

	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], ch)
	b.mu.Unlock()

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		chans := b.subs[topic]
		for i, c := range chans {
			if c == ch {
				b.subs[topic] = append(chans[:i], chans[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, unsubscribe
}

// Publish delivers payload to every subscriber of topic.
func (b *Bus) Publish(topic string, payload any) {
	msg := Message{Topic: topic, Payload: payload, At: time.Now()}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs[topic] {
		select {
		case ch <- msg:
		default:
			slog.Warn("Bus subscriber lagging, message dropped", "topic", topic)
		}
	}
}

// Close closes all subscriber channels. Publish becomes a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, chans := range b.subs {
		for _, ch := range chans {
			close(ch)
		}
	}
	b.subs = make(map[string][]chan Message)
}

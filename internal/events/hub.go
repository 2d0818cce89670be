package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Event is a notification pushed to connected dashboard clients.
type Event struct {
	Type      string    `json:"type"`
	ClaimID   string    `json:"claim_id,omitempty"`
	FlagID    uuid.UUID `json:"flag_id,omitempty"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types published by the flag service.
const (
	TypeFlagAdded   = "flag_added"
	TypeFlagRemoved = "flag_removed"
)

// Hub fans events out to subscribed listeners. Publish never blocks; a
// listener that falls behind its buffer loses events rather than stalling
// the publisher.
type Hub struct {
	mu        sync.RWMutex
	listeners map[uuid.UUID]chan Event
	buffer    int
	log       zerolog.Logger
}

// NewHub creates a Hub whose listeners buffer up to buffer events each.
func NewHub(buffer int, log zerolog.Logger) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		listeners: make(map[uuid.UUID]chan Event),
		buffer:    buffer,
		log:       log.With().Str("component", "events").Logger(),
	}
}

// Subscribe registers a new listener and returns its channel along with an
// unsubscribe function. The channel is closed on unsubscribe.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	id := uuid.New()
	ch := make(chan Event, h.buffer)

	h.mu.Lock()
	h.listeners[id] = ch
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		if c, ok := h.listeners[id]; ok {
			delete(h.listeners, id)
			close(c)
		}
		h.mu.Unlock()
	}
	return ch, unsubscribe
}

// Publish delivers the event to every listener with buffer space.
func (h *Hub) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.listeners {
		select {
		case ch <- event:
		default:
			h.log.Warn().
				Str("listener", id.String()).
				Str("type", event.Type).
				Msg("listener buffer full, dropping event")
		}
	}
}

// ListenerCount reports the number of active subscribers.
func (h *Hub) ListenerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners)
}

package events

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesAllListeners(t *testing.T) {
	h := NewHub(4, zerolog.Nop())

	ch1, cancel1 := h.Subscribe()
	ch2, cancel2 := h.Subscribe()
	defer cancel1()
	defer cancel2()

	h.Publish(Event{Type: TypeFlagAdded, ClaimID: "30001"})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, TypeFlagAdded, ev.Type)
			assert.Equal(t, "30001", ev.ClaimID)
			assert.False(t, ev.Timestamp.IsZero())
		default:
			t.Fatal("expected a buffered event")
		}
	}
}

func TestHubPublishDropsWhenBufferFull(t *testing.T) {
	h := NewHub(1, zerolog.Nop())

	ch, cancel := h.Subscribe()
	defer cancel()

	h.Publish(Event{Type: TypeFlagAdded, ClaimID: "1"})
	h.Publish(Event{Type: TypeFlagAdded, ClaimID: "2"})

	ev := <-ch
	assert.Equal(t, "1", ev.ClaimID)
	select {
	case extra := <-ch:
		t.Fatalf("expected second event to be dropped, got %q", extra.ClaimID)
	default:
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	h := NewHub(4, zerolog.Nop())

	ch, cancel := h.Subscribe()
	require.Equal(t, 1, h.ListenerCount())

	cancel()
	assert.Equal(t, 0, h.ListenerCount())

	_, open := <-ch
	assert.False(t, open)

	// Unsubscribing twice is harmless.
	cancel()
}

func TestHubPublishWithoutListeners(t *testing.T) {
	h := NewHub(4, zerolog.Nop())
	h.Publish(Event{Type: TypeFlagRemoved})
	assert.Equal(t, 0, h.ListenerCount())
}

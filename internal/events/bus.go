package events

import (
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/lanes/internal/services/board"
)

// DefaultBufferSize is the per-subscriber channel capacity
const DefaultBufferSize = 64

// Bus fans board events out to in-process subscribers.
// Publish never blocks: a subscriber whose buffer is full misses the event.
type Bus struct {
	mu         sync.Mutex
	subs       map[int]chan Event
	nextID     int
	sequence   int64
	dropped    int64
	bufferSize int
	closed     bool
	now        func() time.Time
}

// NewBus creates a bus. A bufferSize below 1 uses DefaultBufferSize.
func NewBus(bufferSize int) *Bus {
	if bufferSize < 1 {
		bufferSize = DefaultBufferSize
	}
	return &Bus{
		subs:       make(map[int]chan Event),
		bufferSize: bufferSize,
		now:        time.Now,
	}
}

// Subscribe registers a new subscriber.
// The returned cancel func unsubscribes and closes the channel; it is safe to
// call more than once.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() { b.unsubscribe(id) })
	}
}

func (b *Bus) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Publish stamps the event with the next sequence number and the current
// time, then hands it to every subscriber that has room.
// Returns the stamped event.
func (b *Bus) Publish(e Event) Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return e
	}

	b.sequence++
	e.Sequence = b.sequence
	if e.Timestamp.IsZero() {
		e.Timestamp = b.now()
	}

	for id, ch := range b.subs {
		select {
		case ch <- e:
		default:
			b.dropped++
			slog.Debug("event dropped, subscriber buffer full",
				"subscriber", id,
				"event_type", e.Type,
				"sequence", e.Sequence)
		}
	}
	return e
}

// Observer adapts the bus into a store observer
func (b *Bus) Observer() board.Observer {
	return func(c board.Change) {
		b.Publish(eventFromChange(c))
	}
}

// Dropped reports how many deliveries were skipped because a buffer was full
func (b *Bus) Dropped() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Close closes every subscriber channel. Later publishes are ignored.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

// Package bus provides in-process fan-out of store change signals. The stores
// publish after every committed mutation; subscribers (the app loop and the
// UI) react by re-running the recommendation engine against fresh snapshots.
package bus

import "sync"

// Change describes a committed store mutation.
type Change struct {
	Source string // "tasks", "wellness", "settings"
	Kind   string // e.g. "task.toggled", "entry.upserted"
}

// Bus fans changes out to all subscribers.
type Bus struct {
	mu   sync.RWMutex
	subs map[chan Change]struct{}
}

// New creates a Bus.
func New() *Bus {
	return &Bus{subs: make(map[chan Change]struct{})}
}

// Publish delivers c to every subscriber without blocking.
func (b *Bus) Publish(c Change) {
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- c:
		default:
			// subscriber is behind; drop to avoid blocking the mutation path
		}
	}
	b.mu.RUnlock()
}

// Subscribe returns a buffered channel that receives all future changes.
func (b *Bus) Subscribe() chan Change {
	ch := make(chan Change, 64)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Bus) Unsubscribe(ch chan Change) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
	close(ch)
}

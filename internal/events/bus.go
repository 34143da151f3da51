// internal/events/bus.go
//
// Bus is a registry of named observers that receive every broadcast event.
//
// Characteristics:
//   - One name maps to one observer; registering an existing name replaces it.
//   - Delivery is synchronous and fire-and-forget, in ascending name order.
//   - Broadcast copies the registry under the lock and delivers after
//     releasing it, so observers may call back into the bus. Registry changes
//     made during a broadcast apply from the next broadcast.

package events

import (
	"sort"
	"sync"
)

// Observer receives broadcast events. Implementations handle their own
// failures; nothing is reported back to the bus.
type Observer interface {
	Receive(e Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(e Event)

func (f ObserverFunc) Receive(e Event) { f(e) }

// ReservedPrefix starts the names of observers that are not players
// (recorders, loggers). Player names must not use it.
const ReservedPrefix = "#"

type entry struct {
	name     string
	observer Observer
}

// Bus is safe for concurrent use.
type Bus struct {
	mu        sync.Mutex
	observers map[string]Observer
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{observers: make(map[string]Observer)}
}

// Register inserts or replaces the observer stored under name.
func (b *Bus) Register(name string, o Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.observers[name] = o
}

// Unregister removes name. Unknown names are ignored.
func (b *Bus) Unregister(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.observers, name)
}

// Broadcast delivers e to every registered observer.
func (b *Bus) Broadcast(e Event) {
	for _, en := range b.snapshot() {
		en.observer.Receive(e)
	}
}

// Len reports how many observers are registered.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.observers)
}

// Names returns registered names in delivery order.
func (b *Bus) Names() []string {
	snap := b.snapshot()
	out := make([]string, len(snap))
	for i, en := range snap {
		out[i] = en.name
	}
	return out
}

func (b *Bus) snapshot() []entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]entry, 0, len(b.observers))
	for name, o := range b.observers {
		out = append(out, entry{name: name, observer: o})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

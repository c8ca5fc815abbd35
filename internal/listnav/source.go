package listnav

import "sync"

// EventKeyDown is the event name the navigator subscribes to.
const EventKeyDown = "keydown"

// KeyEvent is a single key press delivered by a Source.
type KeyEvent interface {
	// Key returns the key identifier: "ArrowUp", "ArrowDown", "ArrowLeft",
	// "ArrowRight", "Enter", "Home", "End", or a single printable character.
	Key() string
	// PreventDefault suppresses the source's default handling of the event.
	PreventDefault()
}

// KeyHandler receives key events.
type KeyHandler func(KeyEvent)

// Source delivers key events to subscribers by event name.
type Source interface {
	// Subscribe registers h for event and returns a function that removes
	// the registration. The returned function is safe to call more than once.
	Subscribe(event string, h KeyHandler) (unsubscribe func())
}

// DefaultSource is the process-wide source used when no source is configured.
var DefaultSource = NewBus()

// Bus is an in-process Source. Emit delivers synchronously, in subscription
// order, on the caller's goroutine.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[string][]subscription
}

type subscription struct {
	id uint64
	h  KeyHandler
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]subscription)}
}

// Subscribe implements Source.
func (b *Bus) Subscribe(event string, h KeyHandler) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers[event] = append(b.handlers[event], subscription{id: id, h: h})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(event, id) })
	}
}

func (b *Bus) remove(event string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.handlers[event]
	for i, s := range subs {
		if s.id == id {
			b.handlers[event] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.handlers[event]) == 0 {
		delete(b.handlers, event)
	}
}

// Emit delivers ev to every handler subscribed to event.
func (b *Bus) Emit(event string, ev KeyEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event]))
	copy(subs, b.handlers[event])
	b.mu.RUnlock()

	for _, s := range subs {
		s.h(ev)
	}
}

// Len returns the number of handlers subscribed to event.
func (b *Bus) Len(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[event])
}

// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/base16-shell-preview/internal/logger"
)

// Handler receives an event. Returning true consumes it, later handlers for
// the same type are skipped.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler for eventType. Handlers run in subscription order.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[eventType] = append(m.handlers[eventType], handler)
}

// Dispatch runs the handlers for eventType synchronously and reports whether
// one of them consumed the event.
func (m *Manager) Dispatch(eventType Type, data interface{}) bool {
	m.mu.RLock()
	handlers := make([]Handler, len(m.handlers[eventType]))
	copy(handlers, m.handlers[eventType])
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return false
	}
	logger.DebugTagf("event", "Dispatching %v to %d handler(s)", eventType, len(handlers))

	e := Event{Type: eventType, Data: data}
	for _, handler := range handlers {
		if handler(e) {
			return true
		}
	}
	return false
}

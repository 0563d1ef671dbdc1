// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/scriptbench/internal/logger"
)

// Handler defines the function signature for event subscribers.
// Returning true stops delivery to handlers subscribed after it.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler // Map event types to a list of handlers
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "Handler subscribed to %v", eventType)
}

// Dispatch sends an event to the handlers registered for its type, in
// subscription order, on the calling goroutine.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	event := Event{
		Type: eventType,
		Data: data,
	}

	m.mu.RLock()
	handlers, exists := m.handlers[eventType]
	m.mu.RUnlock()

	if !exists || len(handlers) == 0 {
		return
	}

	logger.DebugTagf("event", "Dispatching %v to %d handler(s)", eventType, len(handlers))

	// Copy so a handler may subscribe while being called
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)

	for _, handler := range handlersCopy {
		if handler(event) {
			break
		}
	}
}

package event

import (
	"sync"

	"go.uber.org/zap"

	"bx-casino/internal/logger"
)

type Handler func(payload interface{})

// Bus is a fire-and-forget in-process pub/sub. Handlers run on their own
// goroutines; a panicking subscriber must not take the publisher down.
type Bus struct {
	handlers map[string][]Handler
	mu       sync.RWMutex
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
	}
}

func (b *Bus) Subscribe(event string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[event] = append(b.handlers[event], handler)
}

func (b *Bus) Publish(event string, payload interface{}) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, h := range b.handlers[event] {
		h := h
		go func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Log.Error("event handler panicked",
						zap.String("event", event), zap.Any("panic", r))
				}
			}()
			h(payload)
		}()
	}
}

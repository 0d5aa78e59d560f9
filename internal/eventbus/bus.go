package eventbus

import (
	"context"
	"sync"
	"time"
)

const (
	ActionActivated = "action.activated"
	SplashShown     = "splash.shown"
	SplashHidden    = "splash.hidden"
	RecentChanged   = "recent.changed"
)

type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
}

type EventHandler interface {
	Handle(event Event)
	GetID() string
}

// HandlerFunc adapts a function into an EventHandler with a fixed ID.
type HandlerFunc struct {
	ID string
	Fn func(Event)
}

func (h HandlerFunc) Handle(event Event) { h.Fn(event) }
func (h HandlerFunc) GetID() string      { return h.ID }

// Bus fans events out to subscribers on a worker goroutine. Publish never
// blocks; events are dropped when the buffer is full.
type Bus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
	buffer      chan Event
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	onPanic     func(handlerID string, recovered interface{})
}

func NewBus(bufferSize int) *Bus {
	ctx, cancel := context.WithCancel(context.Background())

	bus := &Bus{
		subscribers: make(map[string][]EventHandler),
		buffer:      make(chan Event, bufferSize),
		ctx:         ctx,
		cancel:      cancel,
	}

	bus.startWorker()
	return bus
}

// OnPanic installs a reporter for handlers that panic.
func (b *Bus) OnPanic(fn func(handlerID string, recovered interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onPanic = fn
}

func (b *Bus) Publish(event Event) bool {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case <-b.ctx.Done():
		return false
	default:
	}

	select {
	case b.buffer <- event:
		return true
	default:
		return false
	}
}

func (b *Bus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

func (b *Bus) Unsubscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.subscribers[eventType]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			b.subscribers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
}

// Shutdown stops the worker after delivering what is already buffered.
func (b *Bus) Shutdown() {
	b.cancel()
	b.wg.Wait()
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for {
			select {
			case event := <-b.buffer:
				b.dispatchEvent(event)
			case <-b.ctx.Done():
				b.drain()
				return
			}
		}
	}()
}

func (b *Bus) drain() {
	for {
		select {
		case event := <-b.buffer:
			b.dispatchEvent(event)
		default:
			return
		}
	}
}

func (b *Bus) dispatchEvent(event Event) {
	b.mu.RLock()
	handlers := make([]EventHandler, len(b.subscribers[event.Type]))
	copy(handlers, b.subscribers[event.Type])
	onPanic := b.onPanic
	b.mu.RUnlock()

	for _, handler := range handlers {
		func(h EventHandler) {
			defer func() {
				if r := recover(); r != nil && onPanic != nil {
					onPanic(h.GetID(), r)
				}
			}()
			h.Handle(event)
		}(handler)
	}
}

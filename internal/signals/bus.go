// Package signals carries named messages from the shell to the presentation
// layer. A Bus plays the role of a window's event channel.
package signals

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"mdnotes/internal/logger"
)

var (
	ErrBusClosed  = errors.New("signal bus closed")
	ErrBufferFull = errors.New("signal bus buffer full")
)

type Event struct {
	Name      string
	Payload   interface{}
	Timestamp time.Time
}

type Handler interface {
	Handle(event Event)
	GetID() string
}

// HandlerFunc adapts a function to Handler under a fixed id.
type HandlerFunc struct {
	ID string
	Fn func(Event)
}

func (h HandlerFunc) Handle(event Event) { h.Fn(event) }
func (h HandlerFunc) GetID() string      { return h.ID }

// Bus delivers events to subscribers on a single worker goroutine, in the
// order they were emitted. Emit never blocks.
type Bus struct {
	subscribers map[string][]Handler
	mu          sync.RWMutex
	sendMu      sync.Mutex
	closed      bool
	buffer      chan Event
	wg          sync.WaitGroup
	log         logger.Logger
}

func NewBus(bufferSize int, log logger.Logger) *Bus {
	if bufferSize < 1 {
		bufferSize = 1
	}

	bus := &Bus{
		subscribers: make(map[string][]Handler),
		buffer:      make(chan Event, bufferSize),
		log:         log,
	}

	bus.startWorker()
	return bus
}

// Emit queues an event. It fails when the bus is shut down or its buffer is
// full; the event is dropped in both cases.
func (b *Bus) Emit(name string, payload interface{}) error {
	event := Event{Name: name, Payload: payload, Timestamp: time.Now()}

	b.sendMu.Lock()
	defer b.sendMu.Unlock()

	if b.closed {
		return fmt.Errorf("emit %s: %w", name, ErrBusClosed)
	}

	select {
	case b.buffer <- event:
		return nil
	default:
		return fmt.Errorf("emit %s: %w", name, ErrBufferFull)
	}
}

func (b *Bus) Subscribe(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[name] = append(b.subscribers[name], handler)
}

func (b *Bus) Unsubscribe(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.subscribers[name]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			b.subscribers[name] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
}

// Shutdown stops accepting events, delivers what is already queued and waits
// for the worker to exit. Safe to call more than once.
func (b *Bus) Shutdown() {
	b.sendMu.Lock()
	if b.closed {
		b.sendMu.Unlock()
		return
	}
	b.closed = true
	close(b.buffer)
	b.sendMu.Unlock()

	b.wg.Wait()
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for event := range b.buffer {
			b.dispatch(event)
		}
	}()
}

func (b *Bus) dispatch(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.subscribers[event.Name]))
	copy(handlers, b.subscribers[event.Name])
	b.mu.RUnlock()

	for _, h := range handlers {
		b.deliver(h, event)
	}
}

func (b *Bus) deliver(h Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("SignalBus", fmt.Errorf("handler panic: %v", r), map[string]interface{}{
				"handler": h.GetID(),
				"signal":  event.Name,
			})
		}
	}()
	h.Handle(event)
}

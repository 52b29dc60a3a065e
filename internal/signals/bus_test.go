package signals

import (
	"errors"
	"sync"
	"testing"
	"time"

	"mdnotes/internal/logger"
)

type recorder struct {
	mu    sync.Mutex
	names []string
	done  chan struct{}
	want  int
}

func newRecorder(want int) *recorder {
	return &recorder{done: make(chan struct{}), want: want}
}

func (r *recorder) Handle(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, e.Name)
	if len(r.names) == r.want {
		close(r.done)
	}
}

func (r *recorder) GetID() string { return "recorder" }

func (r *recorder) wait(t *testing.T) []string {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.names...)
}

func TestBusDeliversInOrder(t *testing.T) {
	bus := NewBus(16, logger.NewNop())
	defer bus.Shutdown()

	rec := newRecorder(4)
	for _, n := range []string{"a", "b"} {
		bus.Subscribe(n, rec)
	}

	for _, n := range []string{"a", "b", "a", "b", "unheard"} {
		if err := bus.Emit(n, nil); err != nil {
			t.Fatalf("Emit(%s): %v", n, err)
		}
	}

	got := rec.wait(t)
	want := []string{"a", "b", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBusShutdownDrainsAndRejects(t *testing.T) {
	bus := NewBus(4, logger.NewNop())

	var mu sync.Mutex
	count := 0
	bus.Subscribe("x", HandlerFunc{ID: "count", Fn: func(Event) {
		mu.Lock()
		count++
		mu.Unlock()
	}})

	for i := 0; i < 3; i++ {
		if err := bus.Emit("x", nil); err != nil {
			t.Fatal(err)
		}
	}
	bus.Shutdown()
	bus.Shutdown()

	mu.Lock()
	defer mu.Unlock()
	if count != 3 {
		t.Errorf("delivered %d events before shutdown, want 3", count)
	}
	if err := bus.Emit("x", nil); !errors.Is(err, ErrBusClosed) {
		t.Errorf("Emit after Shutdown = %v, want ErrBusClosed", err)
	}
}

func TestBusBufferFull(t *testing.T) {
	bus := NewBus(1, logger.NewNop())
	defer bus.Shutdown()

	block := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	bus.Subscribe("slow", HandlerFunc{ID: "slow", Fn: func(Event) {
		once.Do(func() { close(started) })
		<-block
	}})

	if err := bus.Emit("slow", nil); err != nil {
		t.Fatal(err)
	}
	<-started
	if err := bus.Emit("slow", nil); err != nil {
		t.Fatalf("second emit should fit the buffer: %v", err)
	}
	if err := bus.Emit("slow", nil); !errors.Is(err, ErrBufferFull) {
		t.Errorf("third emit = %v, want ErrBufferFull", err)
	}
	close(block)
}

func TestBusRecoversHandlerPanic(t *testing.T) {
	bus := NewBus(4, logger.NewNop())
	defer bus.Shutdown()

	rec := newRecorder(1)
	bus.Subscribe("p", HandlerFunc{ID: "panics", Fn: func(Event) { panic("boom") }})
	bus.Subscribe("p", rec)

	if err := bus.Emit("p", nil); err != nil {
		t.Fatal(err)
	}
	if got := rec.wait(t); len(got) != 1 {
		t.Errorf("got %v", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus(4, logger.NewNop())

	called := false
	h := HandlerFunc{ID: "h", Fn: func(Event) { called = true }}
	bus.Subscribe("u", h)
	bus.Unsubscribe("u", h)

	if err := bus.Emit("u", nil); err != nil {
		t.Fatal(err)
	}
	bus.Shutdown()
	if called {
		t.Error("unsubscribed handler was called")
	}
}

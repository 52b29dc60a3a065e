package shutdown

import (
	"reflect"
	"testing"
	"time"

	"mdnotes/internal/logger"
)

func TestShutdownReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.NewNop(), time.Second)

	var order []string
	m.Register("bus", Func(func() { order = append(order, "bus") }))
	m.Register("view", Func(func() { order = append(order, "view") }))

	m.Shutdown()
	m.Shutdown()

	if want := []string{"view", "bus"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	select {
	case <-m.Done():
	default:
		t.Error("Done not closed")
	}
	if m.Context().Err() == nil {
		t.Error("context not cancelled")
	}
}

func TestShutdownTimeout(t *testing.T) {
	m := NewManager(logger.NewNop(), 10*time.Millisecond)

	block := make(chan struct{})
	defer close(block)
	ran := false
	m.Register("stuck", Func(func() { <-block }))
	m.Register("first", Func(func() { ran = true }))

	start := time.Now()
	m.Shutdown()
	if time.Since(start) > time.Second {
		t.Error("shutdown waited on a stuck component")
	}
	if !ran {
		t.Error("component registered after the stuck one did not run")
	}
}

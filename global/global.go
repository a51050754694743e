// Package global owns the process-wide bus. Call Init once at startup and the
// returned teardown at exit; everything else reaches the bus through the contract.
package global

import (
	"sync"

	cbus "github.com/next-trace/scg-event-bus/contract/bus"
	"github.com/next-trace/scg-event-bus/eventbus"
)

var (
	mu      sync.RWMutex
	current cbus.Bus
)

// Init creates the process bus and returns it as a contract.Bus along with a
// teardown that closes it. A previous bus is closed and replaced.
func Init(opts ...eventbus.Option) (cbus.Bus, func()) { //nolint:ireturn
	b := eventbus.New(opts...)

	mu.Lock()
	prev := current
	current = b
	mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}

	cleanup := func() {
		mu.Lock()
		if current == b {
			current = nil
		}
		mu.Unlock()

		_ = b.Close()
	}

	return b, cleanup
}

// Current returns the process bus, if initialised.
func Current() (cbus.Bus, bool) { //nolint:ireturn
	mu.RLock()
	defer mu.RUnlock()

	return current, current != nil
}

// Raise dispatches e on the process bus. Without a bus nothing is subscribed,
// so e comes back unchanged.
func Raise(e cbus.Event) (cbus.Event, error) { //nolint:ireturn
	b, ok := Current()
	if !ok {
		return e, nil
	}

	return b.Dispatch(e)
}

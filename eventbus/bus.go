package eventbus

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	cbus "github.com/next-trace/scg-event-bus/contract/bus"
	berr "github.com/next-trace/scg-event-bus/contract/errors"
)

// Bus is a process-local registry of ordered handler sequences keyed by event type.
//
// Handler slices are copy-on-write: Subscribe and Unsubscribe publish a fresh slice
// under the write lock, and Dispatch iterates whatever slice was current when it
// started. A dispatch therefore never observes registry changes made while it runs,
// and handlers may subscribe or unsubscribe re-entrantly.
type Bus struct {
	mu sync.RWMutex

	handlers map[cbus.EventType][]entry
	nextID   uint64
	closed   bool

	// handler middleware applied at subscribe time, first registered runs outermost
	mw []Middleware

	observer cbus.DispatchObserver
	logger   *slog.Logger
}

type entry struct {
	id   uint64
	call cbus.Handler
}

var _ cbus.Bus = (*Bus)(nil)

// New constructs an empty Bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		handlers: make(map[cbus.EventType][]entry),
		observer: cbus.NopObserver{},
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, o := range opts {
		o(b)
	}

	return b
}

// Subscribe appends h to the handler sequence of t.
// A nil handler, a zero type or a closed bus yield the inert zero Subscription.
func (b *Bus) Subscribe(t cbus.EventType, h cbus.Handler) cbus.Subscription {
	if h == nil || t == 0 {
		b.logger.Warn("eventbus: ignoring subscription", "type", t, "nil_handler", h == nil)
		return cbus.Subscription{}
	}

	for i := len(b.mw) - 1; i >= 0; i-- {
		h = b.mw[i](h)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		b.logger.Warn("eventbus: subscribe on closed bus", "type", t)
		return cbus.Subscription{}
	}

	b.nextID++
	cur := b.handlers[t]
	next := make([]entry, len(cur), len(cur)+1)
	copy(next, cur)
	b.handlers[t] = append(next, entry{id: b.nextID, call: h})

	return cbus.Subscription{Type: t, ID: b.nextID}
}

// Unsubscribe removes the handler identified by s. Dispatches already in flight
// still run it; the removal is visible from the next dispatch on.
func (b *Bus) Unsubscribe(s cbus.Subscription) error {
	if !s.Valid() {
		return fmt.Errorf("unsubscribe %d/%d: %w", s.Type, s.ID, berr.ErrSubscriptionNotFound)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	cur := b.handlers[s.Type]
	for i, e := range cur {
		if e.id != s.ID {
			continue
		}

		if len(cur) == 1 {
			delete(b.handlers, s.Type)
			return nil
		}

		next := make([]entry, 0, len(cur)-1)
		next = append(next, cur[:i]...)
		b.handlers[s.Type] = append(next, cur[i+1:]...)

		return nil
	}

	return fmt.Errorf("unsubscribe %d/%d: %w", s.Type, s.ID, berr.ErrSubscriptionNotFound)
}

// Dispatch delivers e to every handler of e.Type() in registration order and returns e.
//
// With no handlers registered the event comes back untouched. The first handler that
// fails (error or panic) aborts the dispatch: the remaining handlers are skipped and
// the failure is returned wrapped with ErrHandlerFailed or ErrHandlerPanicked. The
// event is still returned and callers use its state as given.
func (b *Bus) Dispatch(e cbus.Event) (cbus.Event, error) {
	if e == nil {
		return nil, fmt.Errorf("dispatch: %w", berr.ErrNilEvent)
	}

	b.mu.RLock()
	entries, closed := b.handlers[e.Type()], b.closed
	b.mu.RUnlock()

	if closed {
		return e, fmt.Errorf("dispatch %T: %w", e, berr.ErrBusClosed)
	}

	if len(entries) == 0 {
		return e, nil
	}

	var err error

	for i, ent := range entries {
		if err = invoke(ent.call, e); err != nil {
			err = fmt.Errorf("dispatch %T: handler %d of %d: %w", e, i+1, len(entries), err)
			b.logger.Debug("eventbus: dispatch aborted", "type", e.Type(), "handler", i+1, "err", err)

			break
		}
	}

	b.observer.ObserveDispatch(e, len(entries), err)

	return e, err
}

// invoke runs one handler and converts both failure modes into an error so that a
// broken handler only ever affects the dispatch it ran in.
func invoke(h cbus.Handler, e cbus.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Join(berr.ErrHandlerPanicked, fmt.Errorf("panic: %v", r))
		}
	}()

	if herr := h.Handle(e); herr != nil {
		return errors.Join(berr.ErrHandlerFailed, herr)
	}

	return nil
}

// HandlerCount returns the number of handlers registered for t.
func (b *Bus) HandlerCount(t cbus.EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.handlers[t])
}

// HasHandlers reports whether any handler is registered for t.
func (b *Bus) HasHandlers(t cbus.EventType) bool { return b.HandlerCount(t) > 0 }

// Close drops every registration. Later subscriptions are ignored and later
// dispatches return ErrBusClosed. Closing twice is a no-op.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}

	b.closed = true
	clear(b.handlers)

	return nil
}

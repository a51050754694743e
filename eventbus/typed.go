package eventbus

import (
	"fmt"

	cbus "github.com/next-trace/scg-event-bus/contract/bus"
	berr "github.com/next-trace/scg-event-bus/contract/errors"
)

// On subscribes a typed handler. The event type is taken from the zero value of E,
// so E's Type method must not dereference its receiver.
func On[E cbus.Event](s cbus.Subscriber, h cbus.TypedHandler[E]) cbus.Subscription {
	var zero E

	return s.Subscribe(zero.Type(), cbus.HandlerFunc(func(v cbus.Event) error {
		e, ok := v.(E)
		if !ok {
			return fmt.Errorf("handle %T: %w", v, berr.ErrHandlerTypeMismatch)
		}

		return h.Handle(e)
	}))
}

// OnFunc is On for a plain function.
func OnFunc[E cbus.Event](s cbus.Subscriber, fn func(e E) error) cbus.Subscription {
	return On[E](s, cbus.TypedHandlerFunc[E](fn))
}

// Raise dispatches e and returns it with its concrete type.
func Raise[E cbus.Event](d cbus.Dispatcher, e E) (E, error) {
	_, err := d.Dispatch(e)

	return e, err
}

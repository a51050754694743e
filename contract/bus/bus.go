package bus

// Subscriber manages the ordered handler sequence of each event type.
type Subscriber interface {
	// Subscribe appends h to the sequence for t. It always succeeds; the returned
	// handle is the only way to remove the handler again.
	Subscribe(t EventType, h Handler) Subscription
	// Unsubscribe removes a handler. Removal never affects a dispatch already in flight.
	Unsubscribe(s Subscription) error
}

// Dispatcher is the raiser's side of the bus: deliver e to every handler of its type,
// synchronously and in registration order, and hand the same instance back.
type Dispatcher interface {
	Dispatch(e Event) (Event, error)
}

// Bus is the minimal contract consumers depend on instead of the concrete eventbus.Bus.
type Bus interface {
	Subscriber
	Dispatcher

	// Lifecycle
	Close() error
}

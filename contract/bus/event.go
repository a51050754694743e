package bus

// EventType is the explicit tag that keys the handler registry.
// Zero is reserved and never assigned to a concrete event.
type EventType uint16

// Event is a mutable value delivered by pointer to every handler registered for its type.
//
// Type must return a constant and must not dereference its receiver: typed helpers
// resolve the tag by calling Type on the zero value of the event type.
type Event interface {
	Type() EventType
}

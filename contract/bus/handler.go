package bus

// Handler handles one delivered event. Handlers communicate back to the raiser by
// mutating the event in place; a returned error aborts the remaining handlers of
// that dispatch.
type Handler interface {
	Handle(e Event) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(e Event) error

func (f HandlerFunc) Handle(e Event) error { return f(e) }

// TypedHandler handles events of concrete type E.
type TypedHandler[E Event] interface {
	Handle(e E) error
}

// TypedHandlerFunc adapts a plain function to TypedHandler.
type TypedHandlerFunc[E Event] func(e E) error

func (f TypedHandlerFunc[E]) Handle(e E) error { return f(e) }

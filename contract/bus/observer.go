package bus

// DispatchObserver is notified once per dispatch that reached at least one handler,
// after the last handler returned or the dispatch aborted. Implementations run on the
// raiser's goroutine and must be cheap: the simulation raises shape queries many times
// per tick.
type DispatchObserver interface {
	ObserveDispatch(e Event, handlers int, err error)
}

// NopObserver is a no-op implementation used when no observer is configured.
type NopObserver struct{}

func (NopObserver) ObserveDispatch(e Event, handlers int, err error) {
	_ = e
	_ = handlers
	_ = err
}

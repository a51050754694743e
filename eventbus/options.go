package eventbus

import (
	"log/slog"

	cbus "github.com/next-trace/scg-event-bus/contract/bus"
)

// Option configures a Bus instance.
type Option func(*Bus)

// Middleware wraps a handler at subscribe time. Middlewares run in registration order,
// the first one outermost.
type Middleware func(next cbus.Handler) cbus.Handler

// WithLogger sets the logger used for subscription anomalies and aborted dispatches.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bus) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMiddleware registers handler middleware. Only handlers subscribed afterwards are wrapped,
// which for options passed to New means all of them.
func WithMiddleware(mw ...Middleware) Option {
	return func(b *Bus) { b.mw = append(b.mw, mw...) }
}

// WithObserver sets the observer notified after every dispatch that reached at least one handler.
func WithObserver(o cbus.DispatchObserver) Option {
	return func(b *Bus) {
		if o != nil {
			b.observer = o
		}
	}
}

package inmemory

import (
	"sync"

	cbus "github.com/next-trace/scg-event-bus/contract/bus"
)

// Record is one observed dispatch.
type Record struct {
	Type     cbus.EventType
	Handlers int
	Err      error
}

// Recorder is a thread-safe in-memory implementation of cbus.DispatchObserver.
// It records every observed dispatch for testing and diagnostics.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// Ensure Recorder implements the observer contract.
var _ cbus.DispatchObserver = (*Recorder)(nil)

// New creates an empty recorder.
func New() *Recorder { return &Recorder{} }

func (r *Recorder) ObserveDispatch(e cbus.Event, handlers int, err error) {
	r.mu.Lock()
	r.records = append(r.records, Record{Type: e.Type(), Handlers: handlers, Err: err})
	r.mu.Unlock()
}

// Records returns a copy of everything observed so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Record(nil), r.records...)
}

// Failures counts the observed dispatches that aborted.
func (r *Recorder) Failures() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, rec := range r.records {
		if rec.Err != nil {
			n++
		}
	}

	return n
}

// Reset forgets all records.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}

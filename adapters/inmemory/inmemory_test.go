package inmemory_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/next-trace/scg-event-bus/adapters/inmemory"
	cbus "github.com/next-trace/scg-event-bus/contract/bus"
)

type ping struct{}

func (*ping) Type() cbus.EventType { return 7 }

func TestInmemory_ObserveAndRecords(t *testing.T) {
	rec := inmemory.New()

	rec.ObserveDispatch(&ping{}, 2, nil)
	rec.ObserveDispatch(&ping{}, 1, errors.New("boom"))

	got := rec.Records()
	if len(got) != 2 {
		t.Fatalf("want 2 records, got %d", len(got))
	}

	if got[0].Type != 7 || got[0].Handlers != 2 || got[0].Err != nil {
		t.Fatalf("first record mismatch: %+v", got[0])
	}

	if rec.Failures() != 1 {
		t.Fatalf("want 1 failure, got %d", rec.Failures())
	}

	// returned slice is a copy
	got[0].Handlers = 99
	if rec.Records()[0].Handlers != 2 {
		t.Fatalf("records leaked internal slice")
	}

	rec.Reset()

	if n := len(rec.Records()); n != 0 {
		t.Fatalf("want 0 records after reset, got %d", n)
	}
}

func TestInmemory_ConcurrentSafety(t *testing.T) {
	rec := inmemory.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)

		observe := func(_ int) {
			defer wg.Done()

			rec.ObserveDispatch(&ping{}, 1, nil)
		}

		fail := func(_ int) {
			defer wg.Done()

			rec.ObserveDispatch(&ping{}, 1, errors.New("x"))
		}

		go observe(i)
		go fail(i)
	}

	wg.Wait()

	if n := len(rec.Records()); n != 100 {
		t.Fatalf("records=%d", n)
	}

	if rec.Failures() != 50 {
		t.Fatalf("failures=%d", rec.Failures())
	}
}

package global_test

import (
	"errors"
	"testing"

	cbus "github.com/next-trace/scg-event-bus/contract/bus"
	berr "github.com/next-trace/scg-event-bus/contract/errors"
	"github.com/next-trace/scg-event-bus/eventbus"
	"github.com/next-trace/scg-event-bus/global"
)

type tick struct{ N int }

func (*tick) Type() cbus.EventType { return 1 }

func TestGlobal_Lifecycle(t *testing.T) {
	if _, ok := global.Current(); ok {
		t.Fatalf("bus initialised before Init")
	}

	// without a bus, raising is a no-op
	ev := &tick{N: 1}
	if _, err := global.Raise(ev); err != nil || ev.N != 1 {
		t.Fatalf("raise without bus: ev=%+v err=%v", ev, err)
	}

	b, teardown := global.Init()

	cur, ok := global.Current()
	if !ok || cur != b {
		t.Fatalf("Current does not return the initialised bus")
	}

	eventbus.OnFunc(b, func(e *tick) error {
		e.N++
		return nil
	})

	if _, err := global.Raise(ev); err != nil || ev.N != 2 {
		t.Fatalf("raise: ev=%+v err=%v", ev, err)
	}

	teardown()

	if _, ok := global.Current(); ok {
		t.Fatalf("bus still set after teardown")
	}

	if _, err := b.Dispatch(ev); !errors.Is(err, berr.ErrBusClosed) {
		t.Fatalf("want ErrBusClosed after teardown, got %v", err)
	}
}

func TestGlobal_ReinitClosesPrevious(t *testing.T) {
	first, teardownFirst := global.Init()
	second, teardownSecond := global.Init()

	defer teardownSecond()

	if _, err := first.Dispatch(&tick{}); !errors.Is(err, berr.ErrBusClosed) {
		t.Fatalf("previous bus not closed, got %v", err)
	}

	// a stale teardown must not clear the newer bus
	teardownFirst()

	cur, ok := global.Current()
	if !ok || cur != second {
		t.Fatalf("stale teardown cleared the current bus")
	}
}

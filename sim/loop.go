package sim

import (
	"log/slog"

	cbus "github.com/next-trace/scg-event-bus/contract/bus"
	"github.com/next-trace/scg-event-bus/block"
	"github.com/next-trace/scg-event-bus/event"
	"github.com/next-trace/scg-event-bus/eventbus"
	"github.com/next-trace/scg-event-bus/shape"
)

// Loop raises one shape query per block it needs to know about.
// It runs on a single goroutine; Shape and Tick must not be called concurrently.
type Loop struct {
	world  *World
	bus    cbus.Dispatcher
	logger *slog.Logger

	ticks    uint64
	failures uint64
}

// NewLoop wires a loop to the world it simulates and the bus it raises on.
func NewLoop(w *World, d cbus.Dispatcher, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Loop{world: w, bus: d, logger: logger}
}

// Shape returns the collision shape at p after every handler had its say.
// If the dispatch aborts, the event's state at that point is used as given.
func (l *Loop) Shape(p block.Pos) shape.Shape {
	id := l.world.Block(p)

	ev, err := eventbus.Raise(l.bus, &event.BlockShapeEvent{
		State: block.State{Block: id, Pos: p},
		Shape: NaturalShape(id),
	})
	if err != nil {
		l.failures++
		l.logger.Warn("sim: shape query failed", "pos", p, "block", id, "err", err)
	}

	return ev.Shape
}

// Tick queries every position within radius of center (a cube, radius 0 is the
// center block alone) and returns the resolved shapes.
func (l *Loop) Tick(center block.Pos, radius int) map[block.Pos]shape.Shape {
	radius = max(radius, 0)
	side := 2*radius + 1
	out := make(map[block.Pos]shape.Shape, side*side*side)

	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			for dz := -radius; dz <= radius; dz++ {
				p := center.Offset(dx, dy, dz)
				out[p] = l.Shape(p)
			}
		}
	}

	l.ticks++
	l.logger.Debug("sim: tick", "tick", l.ticks, "queries", len(out))

	return out
}

// Ticks is the number of completed ticks.
func (l *Loop) Ticks() uint64 { return l.ticks }

// Failures is the number of shape queries whose dispatch aborted.
func (l *Loop) Failures() uint64 { return l.failures }

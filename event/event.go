// Package event is the catalogue of events the simulation raises on the bus.
package event

import (
	cbus "github.com/next-trace/scg-event-bus/contract/bus"
	"github.com/next-trace/scg-event-bus/block"
	"github.com/next-trace/scg-event-bus/shape"
)

// Event type tags. Zero stays reserved.
const (
	BlockShape cbus.EventType = iota + 1
)

var names = map[cbus.EventType]string{
	BlockShape: "BlockShape",
}

// Name returns a printable name for t.
func Name(t cbus.EventType) string {
	if n, ok := names[t]; ok {
		return n
	}

	return "Unknown"
}

// BlockShapeEvent asks which collision shape a block instance has.
// State is input only; Shape starts as the block's natural shape and handlers may replace it.
type BlockShapeEvent struct {
	State block.State
	Shape shape.Shape
}

var _ cbus.Event = (*BlockShapeEvent)(nil)

func (*BlockShapeEvent) Type() cbus.EventType { return BlockShape }

// Package sim is a minimal host simulation: a sparse block world and a tick loop
// that asks the bus for the collision shape of every block near the player.
package sim

import (
	"github.com/next-trace/scg-event-bus/block"
	"github.com/next-trace/scg-event-bus/shape"
)

// World is a sparse block map. Positions never set hold air.
type World struct {
	blocks map[block.Pos]block.ID
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{blocks: make(map[block.Pos]block.ID)}
}

// Set places id at p. Setting air removes the entry.
func (w *World) Set(p block.Pos, id block.ID) {
	if id == block.Air || id == "" {
		delete(w.blocks, p)
		return
	}

	w.blocks[p] = id
}

// Block returns the block at p.
func (w *World) Block(p block.Pos) block.ID {
	if id, ok := w.blocks[p]; ok {
		return id
	}

	return block.Air
}

// Len is the number of non-air blocks.
func (w *World) Len() int { return len(w.blocks) }

// Positions returns every non-air position, in no particular order.
func (w *World) Positions() []block.Pos {
	out := make([]block.Pos, 0, len(w.blocks))
	for p := range w.blocks {
		out = append(out, p)
	}

	return out
}

var snowLayer = shape.Cuboid(0, 0, 0, 1, 2.0/16, 1)

// NaturalShape is the collision shape a block has before any handler touches it.
func NaturalShape(id block.ID) shape.Shape {
	switch id {
	case block.Air, block.Cobweb, block.Grass, block.PowderSnow, block.SweetBerryBush:
		return shape.Empty()
	case block.Snow:
		return snowLayer
	default:
		return shape.FullCube()
	}
}

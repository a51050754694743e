// Package shape models block collision volumes as unions of axis-aligned boxes
// in block-local coordinates (0..1 on every axis for a full block).
package shape

import (
	"fmt"
	"slices"
	"strings"
)

// Box is an axis-aligned box.
type Box struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// Volume returns the box volume; inverted boxes have none.
func (b Box) Volume() float64 {
	dx, dy, dz := b.MaxX-b.MinX, b.MaxY-b.MinY, b.MaxZ-b.MinZ
	if dx <= 0 || dy <= 0 || dz <= 0 {
		return 0
	}

	return dx * dy * dz
}

// Shape is an immutable collision volume. The zero value is the empty shape.
type Shape struct {
	boxes []Box
}

var fullCube = Shape{boxes: []Box{{MaxX: 1, MaxY: 1, MaxZ: 1}}}

// Empty returns the shape with no collision.
func Empty() Shape { return Shape{} }

// FullCube returns the unit block shape.
func FullCube() Shape { return fullCube }

// Cuboid returns a single-box shape. Degenerate boxes give the empty shape.
func Cuboid(minX, minY, minZ, maxX, maxY, maxZ float64) Shape {
	b := Box{MinX: minX, MinY: minY, MinZ: minZ, MaxX: maxX, MaxY: maxY, MaxZ: maxZ}
	if b.Volume() == 0 {
		return Empty()
	}

	return Shape{boxes: []Box{b}}
}

// Union combines shapes box-wise, dropping empty inputs.
func Union(shapes ...Shape) Shape {
	var boxes []Box
	for _, s := range shapes {
		boxes = append(boxes, s.boxes...)
	}

	return Shape{boxes: boxes}
}

// Boxes returns a copy of the boxes making up s.
func (s Shape) Boxes() []Box { return slices.Clone(s.boxes) }

func (s Shape) IsEmpty() bool { return len(s.boxes) == 0 }

// Equal reports whether s and o consist of the same boxes in the same order.
func (s Shape) Equal(o Shape) bool { return slices.Equal(s.boxes, o.boxes) }

// Bounds returns the smallest box enclosing s, or false for the empty shape.
func (s Shape) Bounds() (Box, bool) {
	if s.IsEmpty() {
		return Box{}, false
	}

	out := s.boxes[0]
	for _, b := range s.boxes[1:] {
		out.MinX, out.MinY, out.MinZ = min(out.MinX, b.MinX), min(out.MinY, b.MinY), min(out.MinZ, b.MinZ)
		out.MaxX, out.MaxY, out.MaxZ = max(out.MaxX, b.MaxX), max(out.MaxY, b.MaxY), max(out.MaxZ, b.MaxZ)
	}

	return out, true
}

// Height is the top of the bounding box, 0 for the empty shape.
func (s Shape) Height() float64 {
	b, ok := s.Bounds()
	if !ok {
		return 0
	}

	return b.MaxY
}

func (s Shape) String() string {
	switch {
	case s.IsEmpty():
		return "empty"
	case s.Equal(fullCube):
		return "full_cube"
	}

	parts := make([]string, 0, len(s.boxes))
	for _, b := range s.boxes {
		parts = append(parts, fmt.Sprintf("[%g,%g,%g..%g,%g,%g]", b.MinX, b.MinY, b.MinZ, b.MaxX, b.MaxY, b.MaxZ))
	}

	return strings.Join(parts, "+")
}

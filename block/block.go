// Package block holds the opaque block identities the simulation asks about.
package block

import (
	"fmt"
	"strings"

	berr "github.com/next-trace/scg-event-bus/contract/errors"
)

// DefaultNamespace is assumed for identifiers written without one.
const DefaultNamespace = "minecraft"

// ID is a namespaced block identifier such as "minecraft:cobweb". IDs compare by equality.
type ID string

const (
	Air            ID = "minecraft:air"
	Stone          ID = "minecraft:stone"
	Grass          ID = "minecraft:short_grass"
	Cobweb         ID = "minecraft:cobweb"
	Snow           ID = "minecraft:snow"
	PowderSnow     ID = "minecraft:powder_snow"
	SweetBerryBush ID = "minecraft:sweet_berry_bush"
)

// ParseID normalizes and validates s. Identifiers without a namespace get DefaultNamespace.
func ParseID(s string) (ID, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	ns, path, found := strings.Cut(s, ":")
	if !found {
		ns, path = DefaultNamespace, s
	}

	if ns == "" || !validChars(ns, false) {
		return "", fmt.Errorf("block id %q: bad namespace: %w", s, berr.ErrInvalidBlockID)
	}

	if path == "" || !validChars(path, true) {
		return "", fmt.Errorf("block id %q: bad path: %w", s, berr.ErrInvalidBlockID)
	}

	return ID(ns + ":" + path), nil
}

func validChars(s string, allowSlash bool) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
		case r == '/' && allowSlash:
		default:
			return false
		}
	}

	return true
}

// Namespace returns the part before the colon.
func (id ID) Namespace() string {
	ns, _, _ := strings.Cut(string(id), ":")
	return ns
}

// Path returns the part after the colon.
func (id ID) Path() string {
	_, p, _ := strings.Cut(string(id), ":")
	return p
}

func (id ID) String() string { return string(id) }

// Pos is an integer block position.
type Pos struct {
	X, Y, Z int
}

func (p Pos) String() string { return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z) }

// Offset returns p moved by the given deltas.
func (p Pos) Offset(dx, dy, dz int) Pos { return Pos{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz} }

// State is a block instance at a position.
type State struct {
	Block ID
	Pos   Pos
}

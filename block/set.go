package block

import (
	"maps"
	"slices"
)

// Set is an unordered set of block identifiers. The zero value is an empty set.
type Set struct {
	m map[ID]struct{}
}

// NewSet builds a set from ids; duplicates collapse.
func NewSet(ids ...ID) Set {
	s := Set{m: make(map[ID]struct{}, len(ids))}
	for _, id := range ids {
		s.m[id] = struct{}{}
	}

	return s
}

// Contains reports whether id is a member.
func (s Set) Contains(id ID) bool {
	_, ok := s.m[id]
	return ok
}

func (s Set) Len() int { return len(s.m) }

// IDs returns the members in sorted order.
func (s Set) IDs() []ID {
	return slices.Sorted(maps.Keys(s.m))
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	return Set{m: maps.Clone(s.m)}
}

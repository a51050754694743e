package bus

// Subscription identifies one registered handler. The zero value is inert.
type Subscription struct {
	Type EventType
	ID   uint64
}

// Valid reports whether s was issued by a bus.
func (s Subscription) Valid() bool { return s.ID != 0 && s.Type != 0 }

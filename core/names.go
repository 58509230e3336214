package core

// Team is a collision partition identifier
// Members of the same team never test against each other
type Team uint16

// CollisionType tags what kind of surface a collidable presents (solid, hazard, ...)
type CollisionType uint16

// NameTable assigns small integer ids to names in registration order
// One table per context for teams, one for collision types
type NameTable[T ~uint16] struct {
	ids   map[string]T
	names []string
}

// NewNameTable creates an empty table; ids start at 1 so the zero value means unset
func NewNameTable[T ~uint16]() *NameTable[T] {
	return &NameTable[T]{
		ids:   make(map[string]T),
		names: []string{""},
	}
}

// Register returns the id for name, allocating the next id on first use
func (t *NameTable[T]) Register(name string) T {
	if id, ok := t.ids[name]; ok {
		return id
	}
	id := T(len(t.names))
	t.ids[name] = id
	t.names = append(t.names, name)
	return id
}

// Lookup returns the id of a registered name; a nil table knows no names
func (t *NameTable[T]) Lookup(name string) (T, bool) {
	if t == nil {
		return 0, false
	}
	id, ok := t.ids[name]
	return id, ok
}

// Name returns the registered name for id, empty if unknown
func (t *NameTable[T]) Name(id T) string {
	if t == nil || int(id) >= len(t.names) {
		return ""
	}
	return t.names[id]
}

// Len returns the number of registered names
func (t *NameTable[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names) - 1
}

// Names returns registered names in registration order
func (t *NameTable[T]) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.names)-1)
	copy(out, t.names[1:])
	return out
}

package core

import "fmt"

// Entity is a generational slot handle into an entity pool
// Low 32 bits hold the slot index, high 32 bits the slot generation
// Generations start at 1 so a live handle is never zero
type Entity uint64

// NilEntity is the zero handle, never issued by a pool
const NilEntity Entity = 0

// MakeEntity packs a slot index and generation into a handle
func MakeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsNil reports whether the handle is the zero handle
func (e Entity) IsNil() bool {
	return e == NilEntity
}

func (e Entity) String() string {
	if e.IsNil() {
		return "entity(nil)"
	}
	return fmt.Sprintf("entity(%d:%d)", e.Index(), e.Generation())
}

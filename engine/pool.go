package engine

import (
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/vmath"
)

type slot struct {
	obj *Object
	gen uint32
}

// Pool owns the objects of a context and hands out generational handles
// Released slots are recycled with a bumped generation so old handles go stale
type Pool struct {
	slots []slot
	free  []uint32
	live  int
}

func NewPool() *Pool {
	return &Pool{slots: make([]slot, 0, 64)}
}

// Insert stores o and returns its handle
func (p *Pool) Insert(o *Object) core.Entity {
	var idx uint32
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = uint32(len(p.slots))
		p.slots = append(p.slots, slot{gen: 1})
	}
	s := &p.slots[idx]
	s.obj = o
	o.handle = core.MakeEntity(idx, s.gen)
	p.live++
	return o.handle
}

// Get resolves a handle; stale or nil handles are not found
func (p *Pool) Get(e core.Entity) (*Object, bool) {
	if e.IsNil() {
		return nil, false
	}
	idx := e.Index()
	if int(idx) >= len(p.slots) {
		return nil, false
	}
	s := p.slots[idx]
	if s.obj == nil || s.gen != e.Generation() {
		return nil, false
	}
	return s.obj, true
}

// Release frees the slot of a live handle
func (p *Pool) Release(e core.Entity) bool {
	if _, ok := p.Get(e); !ok {
		return false
	}
	idx := e.Index()
	s := &p.slots[idx]
	s.obj.handle = core.NilEntity
	s.obj = nil
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	p.free = append(p.free, idx)
	p.live--
	return true
}

// Clone copies the object behind e to pos and inserts the copy
func (p *Pool) Clone(e core.Entity, pos vmath.Vec2) (core.Entity, *Object, error) {
	o, ok := p.Get(e)
	if !ok {
		return core.NilEntity, nil, core.LookupError("Pool.Clone", "no live object for handle", core.ErrStaleEntity).
			With("Entity", e.String())
	}
	c := o.Clone(pos)
	return p.Insert(c), c, nil
}

// Len returns the number of live objects
func (p *Pool) Len() int { return p.live }

// Each visits live objects in slot order until fn returns false
func (p *Pool) Each(fn func(*Object) bool) {
	for i := range p.slots {
		if o := p.slots[i].obj; o != nil {
			if !fn(o) {
				return
			}
		}
	}
}

// Clear releases every object
func (p *Pool) Clear() {
	for i := range p.slots {
		if p.slots[i].obj != nil {
			p.Release(p.slots[i].obj.handle)
		}
	}
}

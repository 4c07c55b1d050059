/*
Package arena implements node storage for a doubly linked list.

Nodes live in slots of a growable slice and reference their neighbours by
Handle instead of by pointer. Freed slots are recycled, and every free bumps
the slot generation so that handles issued for the old occupant stop
resolving.
*/
package arena

import (
	"github.com/cockroachdb/errors"
)

// ErrStale is returned when a handle no longer resolves to a live node.
var ErrStale = errors.New("arena: stale handle")

type slot[T any] struct {
	value      T
	prev, next Handle
	gen        uint32
	live       bool
}

// Arena stores list nodes.
//
// The zero value is a ready to use empty arena.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// Grow preallocates room for n more nodes.
func (a *Arena[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	if free := cap(a.slots) - len(a.slots) + len(a.free); free >= n {
		return
	}
	slots := make([]slot[T], len(a.slots), len(a.slots)+n)
	copy(slots, a.slots)
	a.slots = slots
}

// Live returns the number of allocated nodes.
func (a *Arena[T]) Live() int {
	return a.live
}

// Alloc stores value in a new unlinked node.
func (a *Arena[T]) Alloc(value T) Handle {
	var idx uint32

	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{gen: 1})
	}

	s := &a.slots[idx]
	s.value = value
	s.live = true
	a.live++

	return Handle{index: idx, gen: s.gen}
}

// Free releases the node referenced by h and returns its value.
// It clears the node's own links only; neighbours keep whatever links
// they hold, so callers unlink first unless the whole chain is going away.
func (a *Arena[T]) Free(h Handle) (T, error) {
	s, ok := a.lookup(h)
	if !ok {
		var zero T
		return zero, errors.Wrapf(ErrStale, "free %s", h)
	}

	value := s.value

	var zero T
	s.value = zero
	s.prev = Nil
	s.next = Nil
	s.live = false
	if s.gen++; s.gen == 0 {
		s.gen = 1
	}

	a.free = append(a.free, h.index)
	a.live--

	return value, nil
}

// Valid reports whether h resolves to a live node.
func (a *Arena[T]) Valid(h Handle) bool {
	_, ok := a.lookup(h)
	return ok
}

// Value returns the value of the node referenced by h.
func (a *Arena[T]) Value(h Handle) (T, bool) {
	if s, ok := a.lookup(h); ok {
		return s.value, true
	}

	var zero T
	return zero, false
}

// Next returns the handle following h or Nil.
func (a *Arena[T]) Next(h Handle) Handle {
	if s, ok := a.lookup(h); ok {
		return s.next
	}
	return Nil
}

// Prev returns the handle preceding h or Nil.
func (a *Arena[T]) Prev(h Handle) Handle {
	if s, ok := a.lookup(h); ok {
		return s.prev
	}
	return Nil
}

// Link inserts the unlinked node s after the node at.
func (a *Arena[T]) Link(at, s Handle) {
	as := a.mustLookup(at)
	ss := a.mustLookup(s)

	n := as.next
	as.next = s
	ss.prev = at
	ss.next = n
	if !n.IsNil() {
		a.mustLookup(n).prev = s
	}
}

// LinkBefore inserts the unlinked node s before the node at.
func (a *Arena[T]) LinkBefore(at, s Handle) {
	as := a.mustLookup(at)
	ss := a.mustLookup(s)

	p := as.prev
	as.prev = s
	ss.next = at
	ss.prev = p
	if !p.IsNil() {
		a.mustLookup(p).next = s
	}
}

// Unlink detaches the node h from its neighbours, links the neighbours to each
// other and returns them.
func (a *Arena[T]) Unlink(h Handle) (prev, next Handle) {
	s := a.mustLookup(h)

	prev, next = s.prev, s.next
	if !prev.IsNil() {
		a.mustLookup(prev).next = next
	}
	if !next.IsNil() {
		a.mustLookup(next).prev = prev
	}

	s.prev = Nil
	s.next = Nil

	return prev, next
}

// Sweep frees every live node regardless of linkage and returns how many
// were freed.
func (a *Arena[T]) Sweep() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].live {
			h := Handle{index: uint32(i), gen: a.slots[i].gen}
			if _, err := a.Free(h); err == nil {
				n++
			}
		}
	}
	return n
}

func (a *Arena[T]) lookup(h Handle) (*slot[T], bool) {
	if h.IsNil() || int(h.index) >= len(a.slots) {
		return nil, false
	}

	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, false
	}

	return s, true
}

func (a *Arena[T]) mustLookup(h Handle) *slot[T] {
	s, ok := a.lookup(h)
	if !ok {
		panic("arena: invalid handle " + h.String())
	}
	return s
}

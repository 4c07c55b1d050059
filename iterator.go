package stablelist

import (
	"github.com/cockroachdb/errors"

	"github.com/mgnsk/stablelist/internal/arena"
)

// State is the state of an iterator.
type State int

// Iterator states.
const (
	// Live iterators reference an element of the list.
	Live State = iota
	// Boundary iterators were created on an empty list or by moving past
	// an end of the list. They have no element.
	Boundary
	// Dead iterators referenced an element that has been erased.
	Dead
)

func (s State) String() string {
	switch s {
	case Live:
		return "live"
	case Boundary:
		return "boundary"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Iterator references a single element of a list.
//
// Insertions and erasures of other elements do not affect it.
type Iterator[T any] struct {
	list   *List[T]
	target arena.Handle
}

// State returns the current state of the iterator.
func (it *Iterator[T]) State() State {
	switch {
	case it.target.IsNil():
		return Boundary
	case it.list.nodes.Valid(it.target):
		return Live
	default:
		return Dead
	}
}

// Valid reports whether the iterator references an element.
func (it *Iterator[T]) Valid() bool {
	return it.State() == Live
}

// Get returns the element the iterator references.
func (it *Iterator[T]) Get() (T, bool) {
	return it.list.nodes.Value(it.target)
}

// Next returns an iterator at the following element.
// Past the back of the list the returned iterator has no target.
func (it *Iterator[T]) Next() (*Iterator[T], error) {
	if err := it.checkNavigable("next"); err != nil {
		return nil, err
	}

	return &Iterator[T]{list: it.list, target: it.list.nodes.Next(it.target)}, nil
}

// Previous returns an iterator at the preceding element.
// Before the front of the list the returned iterator has no target.
func (it *Iterator[T]) Previous() (*Iterator[T], error) {
	if err := it.checkNavigable("previous"); err != nil {
		return nil, err
	}

	return &Iterator[T]{list: it.list, target: it.list.nodes.Prev(it.target)}, nil
}

// InsertBefore inserts items immediately before the iterator's element.
func (it *Iterator[T]) InsertBefore(items ...T) error {
	return it.list.InsertBefore(it, items...)
}

// InsertAfter inserts items immediately after the iterator's element.
func (it *Iterator[T]) InsertAfter(items ...T) error {
	return it.list.InsertAfter(it, items...)
}

// Remove erases the iterator's element from the list and returns it.
// The iterator is dead afterwards.
func (it *Iterator[T]) Remove() (T, error) {
	return it.list.Erase(it)
}

func (it *Iterator[T]) checkNavigable(op string) error {
	switch it.State() {
	case Boundary:
		return errors.Wrapf(ErrIteratorExhausted, "%s: iterator has no target", op)
	case Dead:
		return staleError(op)
	}
	return nil
}

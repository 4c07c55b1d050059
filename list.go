/*
Package stablelist implements a doubly linked list with stable iterators.

An Iterator keeps referencing its element while other elements are inserted
or erased around it. It becomes invalid only when its own element is erased,
and that invalidation is detected and reported instead of resolving to
whatever node reuses the storage.
*/
package stablelist

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/mgnsk/stablelist/internal/arena"
)

var nopLogger = zap.NewNop()

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
// A List is not safe for concurrent use, see SyncList.
type List[T any] struct {
	nodes  arena.Arena[T]
	head   arena.Handle
	tail   arena.Handle
	size   int
	logger *zap.Logger
}

// New creates an empty list.
func New[T any](opts ...Option) *List[T] {
	o := newDefaultListOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	l := &List[T]{
		logger: o.logger,
	}
	l.nodes.Grow(o.capacity)

	return l
}

// From creates a list holding items in the given order.
func From[T any](items []T, opts ...Option) *List[T] {
	l := New[T](append([]Option{WithCapacity(len(items))}, opts...)...)
	l.Push(items...)
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Push appends items at the back of the list in order.
func (l *List[T]) Push(items ...T) {
	for _, v := range items {
		h := l.nodes.Alloc(v)
		if l.tail.IsNil() {
			l.head = h
		} else {
			l.nodes.Link(l.tail, h)
		}
		l.tail = h
		l.size++
	}
}

// Unshift prepends items at the front of the list.
// The items keep their argument order: Unshift(a, b) yields a, b, ...
func (l *List[T]) Unshift(items ...T) {
	if len(items) == 0 {
		return
	}

	if l.head.IsNil() {
		l.Push(items...)
		return
	}

	l.insertBefore(l.head, items)
}

// Pop removes and returns the back element.
func (l *List[T]) Pop() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}

	return l.mustErase(l.tail), true
}

// Shift removes and returns the front element.
func (l *List[T]) Shift() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}

	return l.mustErase(l.head), true
}

// Front returns the front element.
func (l *List[T]) Front() (T, bool) {
	return l.nodes.Value(l.head)
}

// Back returns the back element.
func (l *List[T]) Back() (T, bool) {
	return l.nodes.Value(l.tail)
}

// Flatten returns the elements from front to back.
func (l *List[T]) Flatten() []T {
	values := make([]T, 0, l.size)
	for h := l.head; !h.IsNil(); h = l.nodes.Next(h) {
		v, _ := l.nodes.Value(h)
		values = append(values, v)
	}
	return values
}

// Begin returns an iterator at the front element.
// On an empty list the iterator has no target.
func (l *List[T]) Begin() *Iterator[T] {
	return &Iterator[T]{list: l, target: l.head}
}

// End returns an iterator at the back element.
// On an empty list the iterator has no target.
func (l *List[T]) End() *Iterator[T] {
	return &Iterator[T]{list: l, target: l.tail}
}

// InsertBefore inserts items immediately before the element of it,
// keeping their argument order.
func (l *List[T]) InsertBefore(it *Iterator[T], items ...T) error {
	if err := l.checkAnchor(it, "insert before"); err != nil {
		return err
	}

	if len(items) > 0 {
		l.insertBefore(it.target, items)
	}

	return nil
}

// InsertAfter inserts items immediately after the element of it,
// keeping their argument order: InsertAfter(it, a, b) yields it, a, b.
func (l *List[T]) InsertAfter(it *Iterator[T], items ...T) error {
	if err := l.checkAnchor(it, "insert after"); err != nil {
		return err
	}

	if len(items) > 0 {
		l.insertAfter(it.target, items)
	}

	return nil
}

// Erase removes the element of it and returns its value.
// Every iterator at that element becomes stale.
func (l *List[T]) Erase(it *Iterator[T]) (T, error) {
	if err := l.checkAnchor(it, "erase"); err != nil {
		var zero T
		return zero, err
	}

	return l.erase(it.target)
}

func (l *List[T]) insertBefore(at arena.Handle, items []T) {
	for i, v := range items {
		h := l.nodes.Alloc(v)
		l.nodes.LinkBefore(at, h)
		if i == 0 && at == l.head {
			l.head = h
		}
		l.size++
	}
}

func (l *List[T]) insertAfter(at arena.Handle, items []T) {
	cursor := at
	for _, v := range items {
		h := l.nodes.Alloc(v)
		l.nodes.Link(cursor, h)
		if cursor == l.tail {
			l.tail = h
		}
		cursor = h
		l.size++
	}
}

func (l *List[T]) erase(h arena.Handle) (T, error) {
	if !l.nodes.Valid(h) {
		var zero T
		return zero, staleError("erase")
	}

	prev, next := l.nodes.Unlink(h)
	if h == l.head {
		l.head = next
	}
	if h == l.tail {
		l.tail = prev
	}

	v, err := l.nodes.Free(h)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "erase")
	}
	l.size--

	l.checkDetached(h)

	return v, nil
}

// mustErase erases an endpoint the list itself tracks.
// Failing to do so means the structure is already corrupt.
func (l *List[T]) mustErase(h arena.Handle) T {
	v, err := l.erase(h)
	if err != nil {
		err = integrityError("endpoint %s not erasable: %v", h, err)
		l.log().DPanic("list corrupted", zap.Error(err))
		panic(err)
	}
	return v
}

func (l *List[T]) checkAnchor(it *Iterator[T], op string) error {
	switch {
	case it == nil:
		return errors.Wrapf(ErrIteratorExhausted, "%s: nil iterator", op)
	case it.list != l:
		return errors.Wrapf(ErrForeignIterator, "%s", op)
	case it.target.IsNil():
		return errors.Wrapf(ErrIteratorExhausted, "%s: iterator has no target", op)
	case !l.nodes.Valid(it.target):
		return staleError(op)
	}
	return nil
}

func (l *List[T]) log() *zap.Logger {
	if l.logger == nil {
		return nopLogger
	}
	return l.logger
}

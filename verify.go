package stablelist

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/mgnsk/stablelist/internal/arena"
)

// Verify walks the list in both directions and checks its structural
// invariants against the tracked size. It is O(n).
func (l *List[T]) Verify() error {
	if err := l.verify(); err != nil {
		l.log().Error("list integrity fault", zap.Error(err))
		return err
	}
	return nil
}

func (l *List[T]) verify() error {
	if l.head.IsNil() != l.tail.IsNil() {
		return integrityError("head %s and tail %s disagree on emptiness", l.head, l.tail)
	}

	if (l.size == 0) != l.head.IsNil() {
		return integrityError("size %d with head %s", l.size, l.head)
	}

	n := 0
	last := arena.Nil
	for h := l.head; !h.IsNil(); h = l.nodes.Next(h) {
		if !l.nodes.Valid(h) {
			return integrityError("dangling link to %s after %d nodes", h, n)
		}
		if p := l.nodes.Prev(h); p != last {
			return integrityError("node %s links back to %s, expected %s", h, p, last)
		}
		if n++; n > l.size {
			return integrityError("forward walk exceeds size %d", l.size)
		}
		last = h
	}

	if last != l.tail {
		return integrityError("forward walk ends at %s, tail is %s", last, l.tail)
	}

	if n != l.size {
		return integrityError("forward walk counted %d nodes, size is %d", n, l.size)
	}

	m := 0
	for h := l.tail; !h.IsNil(); h = l.nodes.Prev(h) {
		if m++; m > l.size {
			return integrityError("backward walk exceeds size %d", l.size)
		}
	}

	if m != n {
		return integrityError("backward walk counted %d nodes, forward walk %d", m, n)
	}

	if live := l.nodes.Live(); live != l.size {
		return integrityError("%d nodes allocated, size is %d", live, l.size)
	}

	return nil
}

// Close tears the list down. Every node is detached and freed, so all
// outstanding iterators become dead. The list is empty and reusable
// afterwards.
//
// Close reports an integrity fault when the number of detached nodes differs
// from the tracked size or when allocated nodes were not reachable from the
// front of the list.
func (l *List[T]) Close() error {
	var err error

	detached := 0
	for h := l.head; !h.IsNil(); {
		if !l.nodes.Valid(h) {
			err = integrityError("dangling link to %s after %d nodes", h, detached)
			break
		}

		// Free clears the node's own links without touching its
		// neighbours, which may already be dangling.
		next := l.nodes.Next(h)
		if _, ferr := l.nodes.Free(h); ferr != nil {
			err = errors.CombineErrors(err, ferr)
			break
		}

		detached++
		h = next
	}

	orphans := l.nodes.Sweep()
	size := l.size

	l.head = arena.Nil
	l.tail = arena.Nil
	l.size = 0

	if detached != size {
		err = errors.CombineErrors(err, integrityError("teardown detached %d nodes, size was %d", detached, size))
	}

	if orphans > 0 {
		err = errors.CombineErrors(err, integrityError("teardown freed %d unreachable nodes", orphans))
	}

	if err != nil {
		l.log().DPanic("list integrity fault at teardown",
			zap.Error(err),
			zap.Int("detached", detached),
			zap.Int("size", size),
			zap.Int("orphans", orphans),
		)
		return err
	}

	l.log().Debug("list torn down", zap.Int("detached", detached))

	return nil
}

// checkDetached warns when an erased node leaves arena allocations the list
// does not account for.
func (l *List[T]) checkDetached(h arena.Handle) {
	if live := l.nodes.Live(); live != l.size {
		l.log().Warn("erased node leaves untracked allocations",
			zap.Stringer("node", h),
			zap.Int("allocated", live),
			zap.Int("size", l.size),
		)
	}
}

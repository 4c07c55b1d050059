package stablelist

import "github.com/cockroachdb/errors"

var (
	// ErrStaleIterator indicates the iterator's node has been erased.
	ErrStaleIterator = errors.New("stale iterator")

	// ErrIteratorExhausted indicates the iterator has no node to operate on.
	ErrIteratorExhausted = errors.New("iterator exhausted")

	// ErrForeignIterator indicates the iterator belongs to a different list.
	ErrForeignIterator = errors.New("iterator belongs to another list")

	// ErrIntegrity indicates a violated list invariant.
	ErrIntegrity = errors.New("list integrity fault")
)

// staleError marks a stale iterator error as exhausted too, since a dead
// iterator can neither be navigated nor used as an anchor.
func staleError(op string) error {
	return errors.Mark(errors.Wrapf(ErrStaleIterator, "%s", op), ErrIteratorExhausted)
}

func integrityError(format string, args ...interface{}) error {
	return errors.Mark(errors.AssertionFailedf(format, args...), ErrIntegrity)
}

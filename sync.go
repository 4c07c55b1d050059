package stablelist

import (
	"github.com/puzpuzpuz/xsync/v2"
)

// SyncList is a List guarded by a reader-biased mutex.
//
// Single operations are locked individually. Use Update or View to run a
// sequence of list and iterator operations under one lock; iterators must not
// escape the callback.
type SyncList[T any] struct {
	mu   *xsync.RBMutex
	list *List[T]
}

// NewSync creates an empty synchronized list.
func NewSync[T any](opts ...Option) *SyncList[T] {
	return &SyncList[T]{
		mu:   xsync.NewRBMutex(),
		list: New[T](opts...),
	}
}

// Update calls f with exclusive access to the list.
func (s *SyncList[T]) Update(f func(l *List[T]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return f(s.list)
}

// View calls f with shared access to the list. f must not modify the list.
func (s *SyncList[T]) View(f func(l *List[T])) {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	f(s.list)
}

// Push appends items at the back of the list.
func (s *SyncList[T]) Push(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.Push(items...)
}

// Unshift prepends items at the front of the list.
func (s *SyncList[T]) Unshift(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.Unshift(items...)
}

// Pop removes and returns the back element.
func (s *SyncList[T]) Pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.Pop()
}

// Shift removes and returns the front element.
func (s *SyncList[T]) Shift() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.Shift()
}

// Front returns the front element.
func (s *SyncList[T]) Front() (T, bool) {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.Front()
}

// Back returns the back element.
func (s *SyncList[T]) Back() (T, bool) {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.Back()
}

// Len returns the number of elements in the list.
func (s *SyncList[T]) Len() int {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.Len()
}

// Flatten returns the elements from front to back.
func (s *SyncList[T]) Flatten() []T {
	t := s.mu.RLock()
	defer s.mu.RUnlock(t)

	return s.list.Flatten()
}

// Close tears down the list.
func (s *SyncList[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.Close()
}

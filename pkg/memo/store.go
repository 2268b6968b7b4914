package memo

import (
	"container/list"
	"reflect"
	"sync"
)

type entry[K comparable, V any] struct {
	key   K
	deps  any
	value V
}

// Store is a bounded, dependency-aware memo table.
type Store[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List
	mu       sync.Mutex
	onEvict  func(key K, value V)
}

// New creates a store holding at most capacity entries.
// Panics if capacity is not positive.
func New[K comparable, V any](capacity int) *Store[K, V] {
	if capacity <= 0 {
		panic("memo: capacity must be positive")
	}
	return &Store[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}
}

// OnEvict registers fn to be called whenever an entry leaves the store,
// whether by capacity eviction, Invalidate or Clear.
func (s *Store[K, V]) OnEvict(fn func(key K, value V)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvict = fn
}

// Resolve returns the value cached under key if it was computed from deps.
// Otherwise it calls compute, stores the result with deps and reports true.
func (s *Store[K, V]) Resolve(key K, deps any, compute func() V) (V, bool) {
	s.mu.Lock()
	if elem, ok := s.items[key]; ok {
		e := elem.Value.(*entry[K, V])
		if reflect.DeepEqual(e.deps, deps) {
			s.order.MoveToFront(elem)
			v := e.value
			s.mu.Unlock()
			return v, false
		}
	}
	s.mu.Unlock()

	v := compute()

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[key]; ok {
		e := elem.Value.(*entry[K, V])
		e.deps = deps
		e.value = v
		s.order.MoveToFront(elem)
		return v, true
	}

	s.items[key] = s.order.PushFront(&entry[K, V]{key: key, deps: deps, value: v})
	if s.order.Len() > s.capacity {
		s.removeElement(s.order.Back())
	}
	return v, true
}

// Peek returns the cached value for key without checking its dependencies.
func (s *Store[K, V]) Peek(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[key]; ok {
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Invalidate drops the entry for key. It reports whether an entry existed.
func (s *Store[K, V]) Invalidate(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[key]
	if ok {
		s.removeElement(elem)
	}
	return ok
}

// InvalidateFunc drops every entry whose key satisfies match and returns how many were dropped.
func (s *Store[K, V]) InvalidateFunc(match func(key K) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for key, elem := range s.items {
		if match(key) {
			s.removeElement(elem)
			n++
		}
	}
	return n
}

// Len returns the number of cached entries.
func (s *Store[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

// Clear drops every entry.
func (s *Store[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.onEvict != nil {
		for _, elem := range s.items {
			e := elem.Value.(*entry[K, V])
			s.onEvict(e.key, e.value)
		}
	}
	s.items = make(map[K]*list.Element)
	s.order.Init()
}

// Must be called with lock held.
func (s *Store[K, V]) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	s.order.Remove(elem)
	e := elem.Value.(*entry[K, V])
	delete(s.items, e.key)

	if s.onEvict != nil {
		s.onEvict(e.key, e.value)
	}
}

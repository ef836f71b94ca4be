package services

import (
	"sync"
	"sync/atomic"
)

// inflight counts round trips in progress. A store is loading while the
// counter is positive.
type inflight struct {
	n atomic.Int32
}

// start marks one round trip as begun; the returned func ends it.
func (f *inflight) start() (done func()) {
	f.n.Add(1)
	var once sync.Once
	return func() { once.Do(func() { f.n.Add(-1) }) }
}

func (f *inflight) active() bool { return f.n.Load() > 0 }

// syncedList is a local mirror of a server-owned collection.
//
// Replacements are ordered by issue time: a response is applied only if no
// later-issued request has already replaced the list.
type syncedList[T any] struct {
	mu      sync.RWMutex
	items   []T
	issued  uint64
	applied uint64
}

// issue reserves a generation for a request that will replace the list.
func (l *syncedList[T]) issue() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.issued++
	return l.issued
}

// replace installs items fetched by the request of generation gen. It reports
// whether the items were applied.
func (l *syncedList[T]) replace(gen uint64, items []T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen <= l.applied {
		return false
	}
	l.applied = gen
	l.items = append([]T(nil), items...)
	return true
}

func (l *syncedList[T]) prepend(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append([]T{item}, l.items...)
}

// removeFunc drops every item matching match.
func (l *syncedList[T]) removeFunc(match func(T) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.items[:0:0]
	for _, it := range l.items {
		if !match(it) {
			kept = append(kept, it)
		}
	}
	l.items = kept
}

// updateFunc replaces every item matching match with item.
func (l *syncedList[T]) updateFunc(match func(T) bool, item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if match(l.items[i]) {
			l.items[i] = item
		}
	}
}

// snapshot returns a copy safe to hand to callers.
func (l *syncedList[T]) snapshot() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]T(nil), l.items...)
}

// reset empties the list and discards responses of requests issued so far.
func (l *syncedList[T]) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
	l.applied = l.issued
}

// focus is a single-value slot with the same ordering rule as syncedList.
type focus[T any] struct {
	mu      sync.RWMutex
	value   *T
	issued  uint64
	applied uint64
}

func (f *focus[T]) issue() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued++
	return f.issued
}

func (f *focus[T]) set(gen uint64, v T) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if gen <= f.applied {
		return false
	}
	f.applied = gen
	f.value = &v
	return true
}

// update overwrites the slot when match accepts the current value.
func (f *focus[T]) update(match func(T) bool, v T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.value != nil && match(*f.value) {
		f.value = &v
	}
}

func (f *focus[T]) clearIf(match func(T) bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.value != nil && match(*f.value) {
		f.value = nil
	}
}

func (f *focus[T]) get() *T {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.value == nil {
		return nil
	}
	v := *f.value
	return &v
}

func (f *focus[T]) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = nil
	f.applied = f.issued
}

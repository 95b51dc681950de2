package syncstore

import (
	"sync"

	"github.com/google/uuid"
)

// Mirror holds the in-memory copy of one entity collection. All access goes
// through the lock; snapshots are copies, so callers can range over them
// without holding anything.
type Mirror[R any] struct {
	mu      sync.RWMutex
	items   []R
	prepend bool
	idOf    func(R) uuid.UUID
}

// NewMirror creates an empty mirror. When prepend is true new records go to
// the front of the slice, so the newest entry is always first.
func NewMirror[R any](idOf func(R) uuid.UUID, prepend bool) *Mirror[R] {
	return &Mirror[R]{
		items:   []R{},
		prepend: prepend,
		idOf:    idOf,
	}
}

// Replace swaps the entire mirror contents
func (m *Mirror[R]) Replace(items []R) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if items == nil {
		items = []R{}
	}
	m.items = items
}

// Clear empties the mirror
func (m *Mirror[R]) Clear() {
	m.Replace(nil)
}

// Snapshot returns a copy of the mirrored records
func (m *Mirror[R]) Snapshot() []R {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]R, len(m.items))
	copy(out, m.items)
	return out
}

// Get returns the record with the given id
func (m *Mirror[R]) Get(id uuid.UUID) (R, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		if m.idOf(item) == id {
			return item, true
		}
	}
	var zero R
	return zero, false
}

// Len returns the number of mirrored records
func (m *Mirror[R]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Add inserts a record that the remote store has accepted
func (m *Mirror[R]) Add(item R) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.prepend {
		m.items = append([]R{item}, m.items...)
		return
	}
	m.items = append(m.items, item)
}

// Set replaces the record with the same id. It reports whether a record was
// found; a miss leaves the mirror untouched.
func (m *Mirror[R]) Set(item R) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.idOf(item)
	for i := range m.items {
		if m.idOf(m.items[i]) == id {
			m.items[i] = item
			return true
		}
	}
	return false
}

// Remove deletes the record with the given id, if present
func (m *Mirror[R]) Remove(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.idOf(m.items[i]) == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

// Update applies fn to the record with the given id in place
func (m *Mirror[R]) Update(id uuid.UUID, fn func(R) R) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.idOf(m.items[i]) == id {
			m.items[i] = fn(m.items[i])
			return true
		}
	}
	return false
}

// Each calls fn for every mirrored record, in order, under the read lock
func (m *Mirror[R]) Each(fn func(R)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		fn(item)
	}
}

package sink

import "sync"

// MemoryStore keeps emitted records in memory. It backs tests and in-process
// analysis; data is lost when the process exits.
type MemoryStore struct {
	mu       sync.RWMutex
	branches map[string]*MemoryBranch
	closed   bool
}

// NewMemoryStore creates an empty in-memory record store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{branches: make(map[string]*MemoryBranch)}
}

// NewBranch implements Store.
func (m *MemoryStore) NewBranch(name, class string) (Branch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	if b, ok := m.branches[name]; ok {
		b.mu.Lock()
		b.class = class
		b.mu.Unlock()
		return b, nil
	}

	b := &MemoryBranch{name: name, class: class}
	m.branches[name] = b
	return b, nil
}

// Branch returns a branch by name, if it exists.
func (m *MemoryStore) Branch(name string) (*MemoryBranch, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.branches[name]
	return b, ok
}

// Branches returns the number of branches. Useful for testing.
func (m *MemoryStore) Branches() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.branches)
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// MemoryBranch holds the records of one output branch.
type MemoryBranch struct {
	mu    sync.RWMutex
	name  string
	class string
	recs  []storedRecord
}

type storedRecord struct {
	event uint64
	rec   any
}

// Name returns the branch name.
func (b *MemoryBranch) Name() string { return b.name }

// Class returns the schema class the branch was created with.
func (b *MemoryBranch) Class() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.class
}

// Append implements Branch.
func (b *MemoryBranch) Append(event uint64, rec any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.recs = append(b.recs, storedRecord{event: event, rec: rec})
	return nil
}

// Len returns the total number of stored records.
func (b *MemoryBranch) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.recs)
}

// Records returns all stored records in append order.
func (b *MemoryBranch) Records() []any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]any, len(b.recs))
	for i, sr := range b.recs {
		out[i] = sr.rec
	}
	return out
}

// Event returns the records stored for one event ordinal, in append order.
func (b *MemoryBranch) Event(event uint64) []any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []any
	for _, sr := range b.recs {
		if sr.event == event {
			out = append(out, sr.rec)
		}
	}
	return out
}

// Package event holds the per-event candidate arena.
//
// Upstream reconstruction fills one Event per simulated collision: candidates
// are appended to the arena and grouped into named, ordered collections. All
// relations between candidates (constituents, subjets, tagging tracks) are
// expressed as Ref indices into the arena, never as pointers, so the reference
// graph cannot form ownership cycles and bounded-depth invariants stay
// checkable.
//
// The conversion engine only reads an Event; creating and filling it is the
// producer's job.
package event

import "sort"

// Ref is an index into an Event's candidate arena.
type Ref int32

// NoRef marks an absent candidate reference.
const NoRef Ref = -1

// Event owns the candidates of a single simulated collision and the named
// collections that group them. The zero value is not usable; call New.
//
// Event is not safe for concurrent mutation. Once filled it may be read from
// multiple goroutines.
type Event struct {
	cands []Candidate
	colls map[string][]Ref
}

// New creates an empty event.
func New() *Event {
	return &Event{colls: make(map[string][]Ref)}
}

// Add appends a candidate to the arena and returns its reference.
func (e *Event) Add(c Candidate) Ref {
	e.cands = append(e.cands, c)
	return Ref(len(e.cands) - 1)
}

// At returns the candidate for ref. The returned pointer stays valid for the
// lifetime of the event but is invalidated by further Add calls.
// Panics if ref is NoRef or out of range.
func (e *Event) At(ref Ref) *Candidate {
	return &e.cands[ref]
}

// Len returns the number of candidates in the arena.
func (e *Event) Len() int {
	return len(e.cands)
}

// AddTo appends refs to the named collection, creating it if needed.
func (e *Event) AddTo(name string, refs ...Ref) {
	e.colls[name] = append(e.colls[name], refs...)
}

// Collection returns the ordered refs of a named collection.
// The returned slice is the live backing slice, not a copy: converters that
// sort in place (when configured to) reorder it for every later reader.
func (e *Event) Collection(name string) ([]Ref, bool) {
	refs, ok := e.colls[name]
	return refs, ok
}

// Collections returns the collection names in lexical order.
func (e *Event) Collections() []string {
	names := make([]string, 0, len(e.colls))
	for name := range e.colls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Depth returns the length of the longest constituent chain below ref:
// 0 for a leaf, 1 for a candidate whose constituents are all leaves, and so
// on. The upstream pipeline guarantees a maximum of 3 (particle inside track
// inside tower inside a composite); Depth lets producers and tests verify it.
func (e *Event) Depth(ref Ref) int {
	max := 0
	for _, sub := range e.cands[ref].Constituents {
		if d := e.Depth(sub) + 1; d > max {
			max = d
		}
	}
	return max
}

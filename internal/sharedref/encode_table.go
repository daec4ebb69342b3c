// Package sharedref implements the shared-reference bookkeeping spec §4.2
// describes: on the encode side, mapping an object identity to the stream
// index it was first written at (so later occurrences become a tag-29 back
// reference instead of a full re-encode); on the decode side, the mirror
// image.
//
// Grounded on the teacher's internal/collision.Tracker, which is the same
// shape for a different purpose: an ordered, instance-local table mapping a
// key to metadata, reset between uses rather than reallocated.
package sharedref

// EncodeTable tracks, for one Encoder's lifetime, which object identities
// have already been assigned a shared-reference slot, plus which
// identities are currently mid-encode (for cycle detection when sharing is
// disabled).
type EncodeTable struct {
	assigned   map[any]int
	order      []any
	inProgress map[any]struct{}
}

// NewEncodeTable creates an empty table.
func NewEncodeTable() *EncodeTable {
	return &EncodeTable{
		assigned:   make(map[any]int),
		inProgress: make(map[any]struct{}),
	}
}

// Lookup reports whether identity has already been assigned a shared slot,
// and if so, which index.
func (t *EncodeTable) Lookup(identity any) (idx int, found bool) {
	idx, found = t.assigned[identity]
	return idx, found
}

// InProgress reports whether identity is currently being encoded higher up
// the call stack (i.e. this is a re-entrant/cyclic occurrence).
func (t *EncodeTable) InProgress(identity any) bool {
	_, ok := t.inProgress[identity]
	return ok
}

// Begin marks identity as assigned the next sequential shared-ref index and
// as in-progress, returning that index. Callers must call End when the
// value has finished encoding.
func (t *EncodeTable) Begin(identity any) int {
	idx := len(t.order)
	t.assigned[identity] = idx
	t.order = append(t.order, identity)
	t.inProgress[identity] = struct{}{}

	return idx
}

// BeginInProgressOnly marks identity as in-progress without assigning it a
// shared slot, used for cycle detection when value sharing is disabled
// (spec §4.4 step 3: fail, don't allocate a tag-28 slot).
func (t *EncodeTable) BeginInProgressOnly(identity any) {
	t.inProgress[identity] = struct{}{}
}

// End clears identity's in-progress marker. The assigned slot (if any)
// remains for the rest of the encode.
func (t *EncodeTable) End(identity any) {
	delete(t.inProgress, identity)
}

// Reset clears all state, allowing the table to be reused for a new
// top-level encode.
func (t *EncodeTable) Reset() {
	clear(t.assigned)
	t.order = t.order[:0]
	clear(t.inProgress)
}

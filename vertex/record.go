package vertex

import (
	"math/rand"

	"github.com/sabe-project/sabe/internal/edgelist"
)

// VertexID indexes a vertex. It is independent of any Graph: a Record is a
// self-contained snapshot that a harness can shuffle between workers without
// reference to a digraph.Graph instance.
type VertexID int

// NoVertex is the sentinel value meaning "no vertex."
const NoVertex VertexID = -1

// EdgeFormat selects which edge lists ToBytes/MarshalText serialize.
type EdgeFormat int

const (
	// EdgesTo writes only the edges pointing from this record to others.
	EdgesTo EdgeFormat = iota
	// EdgesToFrom writes both edge lists.
	EdgesToFrom
)

const (
	flagIsBranch byte = 0x1
	flagIsSource byte = 0x2
	flagIsSink   byte = 0x4
)

// Record is a partition-local vertex record (PLVR): a serializable snapshot
// of one vertex's edges to and from other vertices, plus an opaque payload
// extension slot. It carries no reference to a Graph and is the unit
// exchanged by the compress and prune packages.
type Record struct {
	id             VertexID
	edgesTo        *edgelist.List[VertexID]
	edgesFrom      *edgelist.List[VertexID]
	flags          byte
	payload        []byte
	allowMultiples bool
}

// New constructs an empty Record with the given id. allowMultiples controls
// whether AddEdgeTo/AddEdgeFrom keep parallel edges or treat a repeat as a no-op.
func New(id VertexID, allowMultiples bool) *Record {
	return &Record{
		id:             id,
		edgesTo:        edgelist.New[VertexID](allowMultiples),
		edgesFrom:      edgelist.New[VertexID](allowMultiples),
		allowMultiples: allowMultiples,
	}
}

// ID returns the record's identifier.
func (r *Record) ID() VertexID {
	return r.id
}

// Payload returns the record's opaque payload bytes.
func (r *Record) Payload() []byte {
	return r.payload
}

// SetPayload replaces the record's opaque payload bytes.
func (r *Record) SetPayload(p []byte) {
	r.payload = p
}

// AllowMultiples reports whether this record keeps parallel edges.
func (r *Record) AllowMultiples() bool {
	return r.allowMultiples
}

// IsBranch reports whether the record was last computed to have out-edges
// to, or in-edges from, more than one distinct vertex.
func (r *Record) IsBranch() bool {
	return r.flags&flagIsBranch != 0
}

// IsSource reports whether the record has out-edges but no in-edges.
func (r *Record) IsSource() bool {
	return r.flags&flagIsSource != 0
}

// IsSink reports whether the record has in-edges but no out-edges.
func (r *Record) IsSink() bool {
	return r.flags&flagIsSink != 0
}

// EdgesToLen returns the number of out-edges currently recorded, including
// multiples.
func (r *Record) EdgesToLen() int {
	return r.edgesTo.Len()
}

// EdgesFromLen returns the number of in-edges currently recorded, including
// multiples.
func (r *Record) EdgesFromLen() int {
	return r.edgesFrom.Len()
}

// EdgesTo returns the out-edge destinations in ascending order, including
// multiples. Intended for tests and diagnostic dumps.
func (r *Record) EdgesTo() []VertexID {
	return r.edgesTo.Values()
}

// EdgesFrom returns the in-edge origins in ascending order, including
// multiples. Intended for tests and diagnostic dumps.
func (r *Record) EdgesFrom() []VertexID {
	return r.edgesFrom.Values()
}

// AddEdgeTo adds an edge from this record to the given vertex. Negative
// vertex ids are silently ignored, matching the engine's range tolerance
// policy. Returns ErrCapacityExceeded if the out-edge list is already at
// its 32767-entry cap.
func (r *Record) AddEdgeTo(to VertexID) error {
	if to < 0 {
		return nil
	}
	if _, err := r.edgesTo.Insert(int(to), to); err != nil {
		return vertexErrorf("AddEdgeTo", ErrCapacityExceeded)
	}
	if !r.IsBranch() {
		r.computeIsBranch()
	}
	r.computeIsSourceSink()
	return nil
}

// AddEdgeFrom adds an edge from the given vertex to this record. Negative
// vertex ids are silently ignored. Returns ErrCapacityExceeded if the
// in-edge list is already at its 32767-entry cap.
func (r *Record) AddEdgeFrom(from VertexID) error {
	if from < 0 {
		return nil
	}
	if _, err := r.edgesFrom.Insert(int(from), from); err != nil {
		return vertexErrorf("AddEdgeFrom", ErrCapacityExceeded)
	}
	if !r.IsBranch() {
		r.computeIsBranch()
	}
	r.computeIsSourceSink()
	return nil
}

// RemoveEdgeTo removes the first out-edge to the given vertex, leaving any
// further parallel edges to the same vertex untouched. Any live iterator
// positioned at the removed edge is advanced automatically. This record
// type removes only the first match even with multiples enabled; the
// companion digraph.Graph.RemoveEdge removes every parallel at once — the
// two data structures intentionally disagree on "remove all" versus
// "remove one".
func (r *Record) RemoveEdgeTo(to VertexID) {
	if r.edgesTo.RemoveOneKey(int(to)) {
		r.computeIsBranch()
		r.computeIsSourceSink()
	}
}

// RemoveEdgeFrom removes the first in-edge from the given vertex, leaving
// any further parallel edges untouched.
func (r *Record) RemoveEdgeFrom(from VertexID) {
	if r.edgesFrom.RemoveOneKey(int(from)) {
		r.computeIsBranch()
		r.computeIsSourceSink()
	}
}

// computeIsBranch recomputes flagIsBranch from scratch: a record is a
// branch if its out-edges target more than one distinct vertex, or its
// in-edges originate from more than one distinct vertex.
func (r *Record) computeIsBranch() {
	r.flags &^= flagIsBranch
	if r.edgesTo.DistinctKeys() >= 2 || r.edgesFrom.DistinctKeys() >= 2 {
		r.flags |= flagIsBranch
	}
}

// computeIsSourceSink recomputes flagIsSource and flagIsSink from the
// current edge counts.
func (r *Record) computeIsSourceSink() {
	r.flags &^= flagIsSource
	r.flags &^= flagIsSink
	to, from := r.edgesTo.Len(), r.edgesFrom.Len()
	if to > 0 && from == 0 {
		r.flags |= flagIsSource
	}
	if to == 0 && from > 0 {
		r.flags |= flagIsSink
	}
}

// ToGroupIterator returns a group iterator over the out-edges, batching
// every consecutive run of edges that share a destination.
func (r *Record) ToGroupIterator() *edgelist.GroupIterator[VertexID] {
	return r.edgesTo.NewGroupIterator()
}

// FromGroupIterator returns a group iterator over the in-edges, batching
// every consecutive run of edges that share an origin.
func (r *Record) FromGroupIterator() *edgelist.GroupIterator[VertexID] {
	return r.edgesFrom.NewGroupIterator()
}

// RemoveAllEdgesTo removes every out-edge to the given vertex at once (the
// whole parallel group, unlike RemoveEdgeTo). Used by the coverage pruner,
// which evaluates and discards whole destination groups.
func (r *Record) RemoveAllEdgesTo(to VertexID) int {
	n := r.edgesTo.RemoveAllKey(int(to))
	if n > 0 {
		r.Recompute()
	}
	return n
}

// RemoveAllEdgesFrom removes every in-edge from the given vertex at once.
func (r *Record) RemoveAllEdgesFrom(from VertexID) int {
	n := r.edgesFrom.RemoveAllKey(int(from))
	if n > 0 {
		r.Recompute()
	}
	return n
}

// Recompute refreshes IsBranch/IsSource/IsSink from the current edge lists.
// Callers that mutate edge lists in bulk (merge, prune) call this once
// afterward instead of relying on the incremental add/remove updates.
func (r *Record) Recompute() {
	r.computeIsBranch()
	r.computeIsSourceSink()
}

// Merge unions the edges of other into this record. The two records must
// share an id; Merge returns ErrPreconditionViolation otherwise. Merging
// makes sense when combining partial evidence for the same vertex gathered
// by different workers; it is distinct from CompressChain, which collapses
// two different vertices in a chain.
func (r *Record) Merge(other *Record) error {
	if r.id != other.id {
		return vertexErrorf("Merge", ErrPreconditionViolation)
	}
	for _, to := range other.edgesTo.Values() {
		if err := r.AddEdgeTo(to); err != nil {
			return err
		}
	}
	for _, from := range other.edgesFrom.Values() {
		if err := r.AddEdgeFrom(from); err != nil {
			return err
		}
	}
	return nil
}

// tail describes the single distinct vertex a record's out-edges all point
// to, and how many edges point there. id is NoVertex if the out-edges are
// empty or target more than one distinct vertex.
type tail struct {
	id    VertexID
	count int
}

func (r *Record) getTail() tail {
	id := NoVertex
	count := 0
	for _, to := range r.edgesTo.Values() {
		if id == NoVertex {
			id = to
		} else if id != to {
			return tail{id: NoVertex, count: 0}
		}
		count++
	}
	return tail{id: id, count: count}
}

// CompressChainKey draws this record's pairing key for randomized chain
// compression: either its own id or its unique successor's id, chosen by a
// fair coin. Sinks (no successor) always key on their own id. rnd must be a
// per-run generator, never the package-global one, so that pairing choices
// are not correlated across concurrent workers.
func (r *Record) CompressChainKey(rnd *rand.Rand) VertexID {
	t := r.getTail()
	if t.id == NoVertex {
		return r.id
	}
	if rnd.Intn(2) == 0 {
		return t.id
	}
	return r.id
}

// CompressChain collapses other into this record if they are adjacent links
// of the same chain: this record's out-edges must all point to other, and
// other must itself have a unique successor. On success this record's
// out-edges are replaced with edges to other's successor (count edges,
// where count is governed by multiplesMustMatch) and fuse, if non-nil, is
// called with this record's and other's payloads (in that order) to produce
// the fused payload. Returns false without mutating this record if the two
// records are not adjacent links of a chain, or if multiplesMustMatch is
// true and the multiplicities of the two edges disagree.
func (r *Record) CompressChain(other *Record, multiplesMustMatch bool, fuse func(a, b []byte) []byte) (bool, error) {
	if r.IsBranch() || other.IsBranch() {
		return false, vertexErrorf("CompressChain", ErrInvalidInput)
	}

	t := r.getTail()
	if t.id != other.id {
		return false, nil
	}
	otherTail := other.getTail()
	if otherTail.id == NoVertex {
		return false, nil
	}
	if multiplesMustMatch && t.count != otherTail.count {
		return false, nil
	}

	count := t.count
	if otherTail.count < count {
		count = otherTail.count
	}

	if fuse != nil {
		r.payload = fuse(r.payload, other.payload)
	}

	r.edgesTo = edgelist.New[VertexID](r.allowMultiples)
	r.edgesFrom = edgelist.New[VertexID](r.allowMultiples)
	for i := 0; i < count; i++ {
		if err := r.AddEdgeTo(otherTail.id); err != nil {
			return false, err
		}
	}
	return true, nil
}

// CompressChainPair performs the key-gated pairwise merge step: given
// two records that both arrived at the same pairing key, exactly one is
// compressed into the other, chosen by which record's id equals key. It
// returns the surviving record, or nil if key names neither record's id
// (no merge should be attempted) or the merge's preconditions fail.
func CompressChainPair(v1, v2 *Record, key VertexID, multiplesMustMatch bool, fuse func(a, b []byte) []byte) (*Record, error) {
	switch key {
	case v1.id:
		ok, err := v2.CompressChain(v1, multiplesMustMatch, fuse)
		if err != nil || !ok {
			return nil, err
		}
		return v2, nil
	case v2.id:
		ok, err := v1.CompressChain(v2, multiplesMustMatch, fuse)
		if err != nil || !ok {
			return nil, err
		}
		return v1, nil
	default:
		return nil, nil
	}
}

// Equal reports whether two records describe the same id and the same set
// of distinct out- and in-edge destinations (multiplicity is ignored, as in
// the original's set-based equality).
func (r *Record) Equal(other *Record) bool {
	if r.id != other.id {
		return false
	}
	return sameSet(r.edgesTo.Values(), other.edgesTo.Values()) &&
		sameSet(r.edgesFrom.Values(), other.edgesFrom.Values())
}

func sameSet(a, b []VertexID) bool {
	seen := make(map[VertexID]struct{}, len(a))
	for _, v := range a {
		seen[v] = struct{}{}
	}
	other := make(map[VertexID]struct{}, len(b))
	for _, v := range b {
		other[v] = struct{}{}
	}
	if len(seen) != len(other) {
		return false
	}
	for v := range seen {
		if _, ok := other[v]; !ok {
			return false
		}
	}
	return true
}

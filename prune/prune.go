package prune

import (
	"github.com/sabe-project/sabe/internal/edgelist"
	"github.com/sabe-project/sabe/vertex"
)

// MinGroupSize returns ⌈coverage/2⌉, the minimum number of edges a
// destination (or origin) group must have to survive pruning at the given
// expected coverage.
func MinGroupSize(coverage int) int {
	return (coverage + 1) / 2
}

// Prune examines r's out- and in-edge groups independently against an
// expected coverage c (mc = MinGroupSize(c)): any group smaller than mc is
// removed in its entirety. kept reports whether at least one group
// survived on either side; when neither side has a surviving group, r is
// rejected — omitted from output, not an error, as there is no
// corroborating evidence for the vertex. If r is kept, its classification
// flags are recomputed from the pruned edge lists before return.
//
// Prune operates on fully merged records: it assumes every emitter's
// contribution to r has already been combined via vertex.Record.Merge.
//
// Returns ErrPreconditionViolation if coverage is not positive.
func Prune(r *vertex.Record, coverage int) (bool, error) {
	if coverage <= 0 {
		return false, pruneErrorf("Prune", ErrPreconditionViolation)
	}
	mc := MinGroupSize(coverage)

	survivedTo := pruneSide(r.ToGroupIterator(), mc, r.RemoveAllEdgesTo)
	survivedFrom := pruneSide(r.FromGroupIterator(), mc, r.RemoveAllEdgesFrom)

	if !survivedTo && !survivedFrom {
		return false, nil
	}
	r.Recompute()
	return true, nil
}

func pruneSide(git *edgelist.GroupIterator[vertex.VertexID], mc int, removeGroup func(vertex.VertexID) int) bool {
	defer git.Close()

	survived := false
	for group := git.Begin(); group != nil; group = git.Next() {
		if len(group) < mc {
			removeGroup(group[0])
			continue
		}
		survived = true
	}
	return survived
}

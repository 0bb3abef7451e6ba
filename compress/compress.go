package compress

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/sabe-project/sabe/vertex"
)

// PayloadFuse fuses two records' payloads (in insertion order: the
// surviving record's payload, then the absorbed record's) into the
// compressed record's payload. A nil PayloadFuse leaves the surviving
// record's payload untouched.
type PayloadFuse func(a, b []byte) []byte

// RunContext carries the request-scoped state of one compression run: the
// round counter and the count of consecutive silent rounds. This replaces
// the module-level iteration counters of the system this package
// reimplements (see design note on global counters), and carries a
// correlation ID so a harness can tie log lines from a single run together.
type RunContext struct {
	ID               uuid.UUID
	Round            int
	TerminationCount int
	silentRounds     int
}

// NewRunContext constructs a RunContext. terminationCount is the number of
// consecutive silent rounds required to stop; values <= 0 fall back to the
// spec's default of 1.
func NewRunContext(terminationCount int) *RunContext {
	if terminationCount <= 0 {
		terminationCount = 1
	}
	return &RunContext{ID: uuid.New(), TerminationCount: terminationCount}
}

// Done reports whether the run has seen enough consecutive silent rounds to
// stop.
func (rc *RunContext) Done() bool {
	return rc.silentRounds >= rc.TerminationCount
}

// SilentRounds returns the number of consecutive rounds, up to now, in
// which no merge occurred.
func (rc *RunContext) SilentRounds() int {
	return rc.silentRounds
}

// Round performs one pass of randomized pairwise chain compression over
// records, which must all be non-branch. It computes each record's pairing
// key, groups records by key (as a map/reduce harness's shuffle would),
// and merges every key's group of two that agree, per CompressChainPair.
// A key with only one record, or two records whose key matches neither id,
// passes those records through unmerged. rnd must be a per-run generator,
// never a shared global one, so that concurrent workers' pairing choices
// are not correlated.
//
// Round returns ErrInvalidInput if any input record is a branch.
func Round(records []*vertex.Record, rnd *rand.Rand, multiplesMustMatch bool, fuse PayloadFuse) ([]*vertex.Record, int, error) {
	groups := make(map[vertex.VertexID][]*vertex.Record, len(records))
	for _, r := range records {
		if r.IsBranch() {
			return nil, 0, compressErrorf("Round", ErrInvalidInput)
		}
		key := r.CompressChainKey(rnd)
		groups[key] = append(groups[key], r)
	}

	out := make([]*vertex.Record, 0, len(records))
	merges := 0
	for key, group := range groups {
		switch len(group) {
		case 1:
			out = append(out, group[0])
		case 2:
			merged, err := vertex.CompressChainPair(group[0], group[1], key, multiplesMustMatch, fuse)
			if err != nil {
				return nil, 0, compressErrorf("Round", err)
			}
			if merged == nil {
				out = append(out, group[0], group[1])
				continue
			}
			out = append(out, merged)
			merges++
		default:
			// More than two records converged on the same key. The spec's
			// pairing scheme bounds this at two for a simple chain; a
			// branch-excluded successor or an unusual graph shape can
			// still produce a larger group. Emit them unmerged rather
			// than guess at a pairing among three or more.
			out = append(out, group...)
		}
	}
	return out, merges, nil
}

// RecordRound advances ctx by one round that produced the given number of
// merges: Round increments, and the silent-round counter either resets (a
// merge occurred) or grows (it did not). Exported so a harness that drives
// Round itself, one call per worker barrier, can still use RunContext to
// decide when to stop.
func (rc *RunContext) RecordRound(merges int) {
	rc.Round++
	if merges == 0 {
		rc.silentRounds++
	} else {
		rc.silentRounds = 0
	}
}

// RunToFixpoint drives Round in-process until ctx.TerminationCount
// consecutive rounds have merged nothing. Each round's output is the next
// round's input. The returned record count is weakly decreasing across
// rounds and strictly decreasing whenever a round is not silent, so at
// most the initial record count minus one rounds merge anything and the
// run always terminates.
func RunToFixpoint(records []*vertex.Record, ctx *RunContext, rnd *rand.Rand, multiplesMustMatch bool, fuse PayloadFuse) ([]*vertex.Record, error) {
	current := records
	for !ctx.Done() {
		next, merges, err := Round(current, rnd, multiplesMustMatch, fuse)
		if err != nil {
			return nil, err
		}
		ctx.RecordRound(merges)
		current = next
	}
	return current, nil
}

package vertex_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sabe-project/sabe/vertex"
)

type RecordSuite struct {
	suite.Suite
}

func TestRecordSuite(t *testing.T) {
	suite.Run(t, new(RecordSuite))
}

func (s *RecordSuite) TestAddEdgeKeepsAscendingOrder() {
	require := require.New(s.T())
	r := vertex.New(1, false)

	require.NoError(r.AddEdgeTo(5))
	require.NoError(r.AddEdgeTo(2))
	require.NoError(r.AddEdgeTo(9))

	require.Equal([]vertex.VertexID{2, 5, 9}, r.EdgesTo())
}

func (s *RecordSuite) TestAddEdgeMultiplesDisabledIsNoOp() {
	require := require.New(s.T())
	r := vertex.New(1, false)

	require.NoError(r.AddEdgeTo(5))
	require.NoError(r.AddEdgeTo(5))

	require.Equal(1, r.EdgesToLen())
}

// edgesTo={5,5,7} under allowMultiples=on is a branch
// (distinct destinations 5 and 7); the group iterator yields [5,5] then [7].
func (s *RecordSuite) TestBranchWithMultiplesAndGroupIteration() {
	require := require.New(s.T())
	r := vertex.New(1, true)

	require.NoError(r.AddEdgeTo(5))
	require.NoError(r.AddEdgeTo(5))
	require.NoError(r.AddEdgeTo(7))

	require.True(r.IsBranch())

	git := r.ToGroupIterator()
	g1 := git.Begin()
	require.Equal([]vertex.VertexID{5, 5}, g1)
	g2 := git.Next()
	require.Equal([]vertex.VertexID{7}, g2)
	require.True(git.Done())
}

func (s *RecordSuite) TestSourceSinkClassification() {
	require := require.New(s.T())
	r := vertex.New(1, false)
	require.NoError(r.AddEdgeTo(2))
	require.True(r.IsSource())
	require.False(r.IsSink())

	require.NoError(r.AddEdgeFrom(0))
	require.False(r.IsSource())
	require.False(r.IsSink())
}

// Scenario 3: three chain records A(1->2) B(2->3) C(3->4); A<->B pair at
// B's id (2) in round 1, (merged)<->C pair at C's id (3) in round 2, which
// yields id=1, to={4}.
func (s *RecordSuite) TestCompressChainPair() {
	require := require.New(s.T())

	a := vertex.New(1, false)
	require.NoError(a.AddEdgeTo(2))
	b := vertex.New(2, false)
	require.NoError(b.AddEdgeTo(3))
	c := vertex.New(3, false)
	require.NoError(c.AddEdgeTo(4))

	fuse := func(x, y []byte) []byte { return append(append([]byte{}, x...), y...) }
	a.SetPayload([]byte("A"))
	b.SetPayload([]byte("B"))
	c.SetPayload([]byte("C"))

	merged1, err := vertex.CompressChainPair(a, b, 2, true, fuse)
	require.NoError(err)
	require.NotNil(merged1)
	require.Equal(vertex.VertexID(1), merged1.ID())
	require.Equal([]vertex.VertexID{3}, merged1.EdgesTo())
	require.Equal([]byte("AB"), merged1.Payload())

	merged2, err := vertex.CompressChainPair(merged1, c, 3, true, fuse)
	require.NoError(err)
	require.NotNil(merged2)
	require.Equal(vertex.VertexID(1), merged2.ID())
	require.Equal([]vertex.VertexID{4}, merged2.EdgesTo())
	require.Equal([]byte("ABC"), merged2.Payload())
}

func (s *RecordSuite) TestCompressChainRejectsBranch() {
	require := require.New(s.T())
	r := vertex.New(1, true)
	require.NoError(r.AddEdgeTo(2))
	require.NoError(r.AddEdgeTo(3))
	require.True(r.IsBranch())

	other := vertex.New(2, false)
	_, err := r.CompressChain(other, true, nil)
	require.ErrorIs(err, vertex.ErrInvalidInput)
}

func (s *RecordSuite) TestCompressChainKeyIsDeterministicWithSeed() {
	require := require.New(s.T())
	r := vertex.New(1, false)
	require.NoError(r.AddEdgeTo(2))

	rnd := rand.New(rand.NewSource(1))
	key := r.CompressChainKey(rnd)
	require.True(key == 1 || key == 2)
}

// Coverage pruning discards whole groups: with edgesTo={5,5,7} and
// coverage=4 (mc=2) the {7} group is removed and the {5,5} group survives.
// This is exercised end to end in the prune package; here we only check
// the group-removal primitive it depends on.
func (s *RecordSuite) TestRemoveAllEdgesToRemovesWholeGroup() {
	require := require.New(s.T())
	r := vertex.New(1, true)
	require.NoError(r.AddEdgeTo(5))
	require.NoError(r.AddEdgeTo(5))
	require.NoError(r.AddEdgeTo(7))

	n := r.RemoveAllEdgesTo(7)
	require.Equal(1, n)
	require.Equal([]vertex.VertexID{5, 5}, r.EdgesTo())
}

// Scenario 5: round-trip with payload.
func (s *RecordSuite) TestByteRoundTripWithPayload() {
	require := require.New(s.T())
	r := vertex.New(42, false)
	require.NoError(r.AddEdgeTo(1))
	require.NoError(r.AddEdgeTo(2))
	require.NoError(r.AddEdgeFrom(7))
	r.SetPayload([]byte{0xAA, 0xBB})

	encoded := r.ToBytes(vertex.EdgesToFrom)
	require.Equal(vertex.TypeTagVertex, encoded[0])

	decoded := vertex.FromBytes(encoded[1:], false)
	require.True(r.Equal(decoded))
	require.Equal(r.Payload(), decoded.Payload())
}

func (s *RecordSuite) TestByteRoundTripEdgesToOnlyOmitsFrom() {
	require := require.New(s.T())
	r := vertex.New(42, false)
	require.NoError(r.AddEdgeTo(1))
	require.NoError(r.AddEdgeFrom(7))

	encoded := r.ToBytes(vertex.EdgesTo)
	decoded := vertex.FromBytes(encoded[1:], false)

	require.Equal([]vertex.VertexID{1}, decoded.EdgesTo())
	require.Empty(decoded.EdgesFrom())
}

func (s *RecordSuite) TestByteRoundTripTruncatedIsPartialNotError() {
	require := require.New(s.T())
	r := vertex.New(42, false)
	require.NoError(r.AddEdgeTo(1))
	require.NoError(r.AddEdgeTo(2))
	r.SetPayload([]byte{0xAA, 0xBB, 0xCC})

	encoded := r.ToBytes(vertex.EdgesTo)
	truncated := encoded[:len(encoded)-3]

	decoded := vertex.FromBytes(truncated[1:], false)
	require.Equal(vertex.VertexID(42), decoded.ID())
}

// A payload length or vertex id containing a byte at or above 0x80 (200 is
// 0x00C8) must round-trip correctly: big-endian parsing must not
// sign-extend it.
func (s *RecordSuite) TestByteRoundTripHighByteValues() {
	require := require.New(s.T())
	r := vertex.New(200, false)
	require.NoError(r.AddEdgeTo(vertex.VertexID(0xAB)))
	r.SetPayload(make([]byte, 200))

	encoded := r.ToBytes(vertex.EdgesTo)
	decoded := vertex.FromBytes(encoded[1:], false)
	require.Equal(vertex.VertexID(200), decoded.ID())
	require.Equal([]vertex.VertexID{0xAB}, decoded.EdgesTo())
	require.Len(decoded.Payload(), 200)
}

func (s *RecordSuite) TestTextRoundTrip() {
	require := require.New(s.T())
	r := vertex.New(42, false)
	require.NoError(r.AddEdgeTo(1))
	require.NoError(r.AddEdgeTo(2))
	require.NoError(r.AddEdgeFrom(7))
	r.SetPayload([]byte{0xAA, 0xBB})

	text := r.MarshalText(vertex.EdgesToFrom)
	decoded, err := vertex.UnmarshalText(string(text), false)
	require.NoError(err)
	require.True(r.Equal(decoded))
	require.Equal(r.Payload(), decoded.Payload())
}

func (s *RecordSuite) TestMergeRequiresSameID() {
	require := require.New(s.T())
	a := vertex.New(1, false)
	b := vertex.New(2, false)
	require.ErrorIs(a.Merge(b), vertex.ErrPreconditionViolation)
}

func (s *RecordSuite) TestMergeUnionsEdges() {
	require := require.New(s.T())
	a := vertex.New(1, false)
	require.NoError(a.AddEdgeTo(2))
	b := vertex.New(1, false)
	require.NoError(b.AddEdgeTo(3))
	require.NoError(b.AddEdgeFrom(0))

	require.NoError(a.Merge(b))
	require.Equal([]vertex.VertexID{2, 3}, a.EdgesTo())
	require.Equal([]vertex.VertexID{0}, a.EdgesFrom())
}

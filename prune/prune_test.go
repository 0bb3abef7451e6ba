package prune_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sabe-project/sabe/prune"
	"github.com/sabe-project/sabe/vertex"
)

type PruneSuite struct {
	suite.Suite
}

func TestPruneSuite(t *testing.T) {
	suite.Run(t, new(PruneSuite))
}

// edgesTo={5,6,7}, edgesFrom={3}, coverage=4 (mc=2): every group on
// both sides has a single edge, fewer than mc, so all are removed, leaving
// no surviving groups on either side, and the record is rejected.
func (s *PruneSuite) TestRejectsWhenBothSidesHaveNoSurvivingGroup() {
	require := require.New(s.T())
	r := vertex.New(1, true)
	require.NoError(r.AddEdgeTo(5))
	require.NoError(r.AddEdgeTo(6))
	require.NoError(r.AddEdgeTo(7))
	require.NoError(r.AddEdgeFrom(3))

	require.Equal(2, prune.MinGroupSize(4))

	kept, err := prune.Prune(r, 4)
	require.NoError(err)
	require.False(kept)
}

func (s *PruneSuite) TestGroupOf7IsRemovedWhileGroupOf5Survives() {
	require := require.New(s.T())
	r := vertex.New(1, true)
	require.NoError(r.AddEdgeTo(5))
	require.NoError(r.AddEdgeTo(5))
	require.NoError(r.AddEdgeTo(7))
	require.NoError(r.AddEdgeFrom(3))
	require.NoError(r.AddEdgeFrom(3))

	kept, err := prune.Prune(r, 4)
	require.NoError(err)
	require.True(kept)
	require.NotContains(r.EdgesTo(), vertex.VertexID(7))
	require.Contains(r.EdgesTo(), vertex.VertexID(5))
}

func (s *PruneSuite) TestRejectsPreconditionViolationOnNonPositiveCoverage() {
	require := require.New(s.T())
	r := vertex.New(1, false)
	_, err := prune.Prune(r, 0)
	require.ErrorIs(err, prune.ErrPreconditionViolation)
}

func (s *PruneSuite) TestRecomputesFlagsAfterPrune() {
	require := require.New(s.T())
	r := vertex.New(1, true)
	require.NoError(r.AddEdgeTo(5))
	require.NoError(r.AddEdgeTo(5))
	require.NoError(r.AddEdgeTo(7))
	require.NoError(r.AddEdgeFrom(3))
	require.NoError(r.AddEdgeFrom(3))
	require.True(r.IsBranch())

	kept, err := prune.Prune(r, 4)
	require.NoError(err)
	require.True(kept)
	require.False(r.IsBranch())
}

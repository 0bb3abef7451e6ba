package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sabe-project/sabe/digraph"
)

type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestAddEdgeKeepsAscendingOrder() {
	require := require.New(s.T())
	g := digraph.New[digraph.BasicEdge](4, digraph.MultiplesDisabled)

	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(3)))
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(1)))
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(2)))

	it, err := g.CreateAdjacencyIterator(0)
	require.NoError(err)
	defer it.Close()

	var got []digraph.VertexID
	for e, ok := it.Begin(); ok; e, ok = it.Next() {
		got = append(got, e.To())
	}
	require.Equal([]digraph.VertexID{1, 2, 3}, got)
}

func (s *GraphSuite) TestAddEdgeMultiplesDisabledIsNoOp() {
	require := require.New(s.T())
	g := digraph.New[digraph.BasicEdge](2, digraph.MultiplesDisabled)

	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(1)))
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(1)))

	out, err := g.OutDegree(0)
	require.NoError(err)
	require.Equal(1, out)
}

func (s *GraphSuite) TestAddEdgeMultiplesEnabledKeepsParallels() {
	require := require.New(s.T())
	g := digraph.New[digraph.BasicEdge](2, digraph.MultiplesEnabled)

	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(1)))
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(1)))

	out, err := g.OutDegree(0)
	require.NoError(err)
	require.Equal(2, out)
}

func (s *GraphSuite) TestOutOfRangeAddRemoveAreNoOps() {
	require := require.New(s.T())
	g := digraph.New[digraph.BasicEdge](2, digraph.MultiplesDisabled)

	require.NoError(g.AddEdge(5, digraph.NewBasicEdge(1)))
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(9)))
	require.NotPanics(func() { g.RemoveEdge(5, 1) })

	out, err := g.OutDegree(0)
	require.NoError(err)
	require.Equal(0, out)
}

func (s *GraphSuite) TestOutOfRangeIteratorAndDegreeRejected() {
	require := require.New(s.T())
	g := digraph.New[digraph.BasicEdge](2, digraph.MultiplesDisabled)

	_, err := g.CreateAdjacencyIterator(5)
	require.ErrorIs(err, digraph.ErrVertexOutOfRange)

	_, err = g.OutDegree(-1)
	require.ErrorIs(err, digraph.ErrVertexOutOfRange)

	_, err = g.InDegree(5)
	require.ErrorIs(err, digraph.ErrVertexOutOfRange)
}

func (s *GraphSuite) TestRemovingNonexistentEdgeIsNoOp() {
	require := require.New(s.T())
	g := digraph.New[digraph.BasicEdge](3, digraph.MultiplesDisabled)
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(1)))

	g.RemoveEdge(0, 2)

	out, err := g.OutDegree(0)
	require.NoError(err)
	require.Equal(1, out)
}

func (s *GraphSuite) TestIteratorAdvancesPastRemovedEdge() {
	require := require.New(s.T())
	g := digraph.New[digraph.BasicEdge](4, digraph.MultiplesDisabled)
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(1)))
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(2)))
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(3)))

	it, err := g.CreateAdjacencyIterator(0)
	require.NoError(err)
	defer it.Close()

	e, ok := it.Begin()
	require.True(ok)
	require.Equal(digraph.VertexID(1), e.To())
	e, ok = it.Next()
	require.True(ok)
	require.Equal(digraph.VertexID(2), e.To())

	g.RemoveEdge(0, 2)

	e, ok = it.Next()
	require.True(ok)
	require.Equal(digraph.VertexID(3), e.To())
}

func (s *GraphSuite) TestDegreesAfterMutation() {
	require := require.New(s.T())
	g := digraph.New[digraph.BasicEdge](3, digraph.MultiplesDisabled)
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(1)))
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(2)))

	out, err := g.OutDegree(0)
	require.NoError(err)
	require.Equal(2, out)

	in, err := g.InDegree(1)
	require.NoError(err)
	require.Equal(1, in)

	g.RemoveEdge(0, 1)

	out, err = g.OutDegree(0)
	require.NoError(err)
	require.Equal(1, out)

	in, err = g.InDegree(1)
	require.NoError(err)
	require.Equal(0, in)
}

func (s *GraphSuite) TestWeightedEdge() {
	require := require.New(s.T())
	g := digraph.New[digraph.WeightedEdge](2, digraph.MultiplesDisabled)
	require.NoError(g.AddEdge(0, digraph.NewWeightedEdge(1, 2.5)))

	it, err := g.CreateAdjacencyIterator(0)
	require.NoError(err)
	defer it.Close()

	e, ok := it.Begin()
	require.True(ok)
	require.Equal(2.5, e.Weight())
}

func (s *GraphSuite) TestGroupIteratorBatchesParallelEdges() {
	require := require.New(s.T())
	g := digraph.New[digraph.BasicEdge](3, digraph.MultiplesEnabled)
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(1)))
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(1)))
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(2)))

	git, err := g.CreateAdjacencyGroupIterator(0)
	require.NoError(err)
	defer git.Close()

	first := git.Begin()
	require.Len(first, 2)
	second := git.Next()
	require.Len(second, 1)
	require.True(git.Done())
}

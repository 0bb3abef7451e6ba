package components_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sabe-project/sabe/components"
	"github.com/sabe-project/sabe/digraph"
)

type ComponentsSuite struct {
	suite.Suite
}

func TestComponentsSuite(t *testing.T) {
	suite.Run(t, new(ComponentsSuite))
}

func (s *ComponentsSuite) TestTwoDisjointCyclesYieldTwoComponents() {
	require := require.New(s.T())
	g := digraph.New[digraph.BasicEdge](6, digraph.MultiplesDisabled)
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(1)))
	require.NoError(g.AddEdge(1, digraph.NewBasicEdge(0)))
	require.NoError(g.AddEdge(3, digraph.NewBasicEdge(4)))
	require.NoError(g.AddEdge(4, digraph.NewBasicEdge(5)))
	require.NoError(g.AddEdge(5, digraph.NewBasicEdge(3)))

	comps, err := components.WeaklyConnected(g)
	require.NoError(err)
	require.Len(comps, 3) // {0,1}, {3,4,5}, and isolated vertex 2

	sizes := sortedSizes(comps)
	require.Equal([]int{1, 2, 3}, sizes)
}

func (s *ComponentsSuite) TestOppositeDirectionEdgesAreStillOneComponent() {
	require := require.New(s.T())
	g := digraph.New[digraph.BasicEdge](3, digraph.MultiplesDisabled)
	require.NoError(g.AddEdge(0, digraph.NewBasicEdge(1)))
	require.NoError(g.AddEdge(2, digraph.NewBasicEdge(1)))

	comps, err := components.WeaklyConnected(g)
	require.NoError(err)
	require.Len(comps, 1)
	require.ElementsMatch([]digraph.VertexID{0, 1, 2}, comps[0])
}

func (s *ComponentsSuite) TestEmptyGraphYieldsSingletonComponents() {
	require := require.New(s.T())
	g := digraph.New[digraph.BasicEdge](4, digraph.MultiplesDisabled)

	comps, err := components.WeaklyConnected(g)
	require.NoError(err)
	require.Len(comps, 4)
	for _, c := range comps {
		require.Len(c, 1)
	}
}

func sortedSizes(comps []components.Component) []int {
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	sort.Ints(sizes)
	return sizes
}

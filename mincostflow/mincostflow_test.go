package mincostflow_test

import (
	"context"
	"math"
	"testing"

	"github.com/gographlib/algo/flow"
	"github.com/gographlib/algo/mincostflow"
	"github.com/stretchr/testify/require"
)

// diamondPipes builds a four-node diamond with two unit-capacity routes of
// different cost: 0->1->3 costs 2 per unit, 0->2->3 costs 3 per unit. Max
// flow 2, min cost of the max flow 5.
func diamondPipes() []flow.Pipe {
	return []flow.Pipe{
		flow.NewCostedDirectPipe(0, 1, 1, 1),
		flow.NewCostedDirectPipe(0, 2, 1, 2),
		flow.NewCostedDirectPipe(1, 3, 1, 1),
		flow.NewCostedDirectPipe(2, 3, 1, 1),
	}
}

func TestSuccessiveShortestPaths_DiamondMinCost(t *testing.T) {
	net := flow.NewNetwork(4, diamondPipes())
	feasible, flowValue, cost, err := mincostflow.SuccessiveShortestPaths(context.Background(), net, 0, 3, 2)
	require.NoError(t, err)
	require.True(t, feasible)
	require.Equal(t, 2.0, flowValue)
	require.Equal(t, 5.0, cost)
}

func TestSuccessiveShortestPaths_PartialDemandTakesCheapRoute(t *testing.T) {
	net := flow.NewNetwork(4, diamondPipes())
	feasible, flowValue, cost, err := mincostflow.SuccessiveShortestPaths(context.Background(), net, 0, 3, 1)
	require.NoError(t, err)
	require.True(t, feasible)
	require.Equal(t, 1.0, flowValue)
	require.Equal(t, 2.0, cost) // one unit along 0->1->3
}

func TestSuccessiveShortestPaths_DemandExceedsMaxFlow(t *testing.T) {
	net := flow.NewNetwork(4, diamondPipes())
	feasible, flowValue, _, err := mincostflow.SuccessiveShortestPaths(context.Background(), net, 0, 3, 5)
	require.NoError(t, err)
	require.False(t, feasible)
	require.Equal(t, 2.0, flowValue)
}

func TestSuccessiveShortestPaths_InfiniteDemandIsMinCostMaxFlow(t *testing.T) {
	net := flow.NewNetwork(4, diamondPipes())
	feasible, flowValue, cost, err := mincostflow.SuccessiveShortestPaths(context.Background(), net, 0, 3, math.Inf(1))
	require.NoError(t, err)
	require.True(t, feasible)
	require.Equal(t, 2.0, flowValue)
	require.Equal(t, 5.0, cost)
}

func TestCycleCanceling_AgreesWithSuccessiveShortestPaths(t *testing.T) {
	feasible, flowValue, cost, err := mincostflow.CycleCanceling(context.Background(), 4, diamondPipes(), 0, 3, 2)
	require.NoError(t, err)
	require.True(t, feasible)
	require.Equal(t, 2.0, flowValue)
	require.Equal(t, 5.0, cost)
}

func TestCycleCanceling_ReportsUnmetDemand(t *testing.T) {
	feasible, flowValue, _, err := mincostflow.CycleCanceling(context.Background(), 4, diamondPipes(), 0, 3, 5)
	require.NoError(t, err)
	require.False(t, feasible)
	require.Equal(t, 2.0, flowValue)
}

func TestCycleCanceling_ReroutesOffExpensivePath(t *testing.T) {
	// Two parallel unit routes, costs 1 and 10: a demand of 1 must settle on
	// the cheap one, which cycle canceling only reaches by canceling the
	// cycle through the fictitious pipe's backward arc.
	pipes := []flow.Pipe{
		flow.NewCostedDirectPipe(0, 1, 1, 1),
		flow.NewCostedDirectPipe(0, 1, 1, 10),
	}
	feasible, flowValue, cost, err := mincostflow.CycleCanceling(context.Background(), 2, pipes, 0, 1, 1)
	require.NoError(t, err)
	require.True(t, feasible)
	require.Equal(t, 1.0, flowValue)
	require.Equal(t, 1.0, cost)
}

func TestCycleCanceling_SourceEqualsSink(t *testing.T) {
	feasible, flowValue, cost, err := mincostflow.CycleCanceling(context.Background(), 2, nil, 0, 0, 3)
	require.NoError(t, err)
	require.True(t, feasible)
	require.Equal(t, 0.0, flowValue)
	require.Equal(t, 0.0, cost)
}

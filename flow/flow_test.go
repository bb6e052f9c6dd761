package flow_test

import (
	"context"
	"testing"

	"github.com/gographlib/algo/flow"
	"github.com/stretchr/testify/require"
)

// catalogueNetwork builds the S6 network from the acceptance catalogue:
// classic 6-node max-flow graph with a known max flow of 23.
func catalogueNetwork() (*flow.Network, int, int) {
	pipes := []flow.Pipe{
		flow.NewDirectPipe(0, 1, 16),
		flow.NewDirectPipe(0, 2, 13),
		flow.NewDirectPipe(1, 2, 10),
		flow.NewDirectPipe(2, 1, 4),
		flow.NewDirectPipe(1, 3, 12),
		flow.NewDirectPipe(3, 2, 9),
		flow.NewDirectPipe(2, 4, 14),
		flow.NewDirectPipe(4, 3, 7),
		flow.NewDirectPipe(3, 5, 20),
		flow.NewDirectPipe(4, 5, 4),
	}
	return flow.NewNetwork(6, pipes), 0, 5
}

func TestShortestAugmentingPath_S6FromCatalogue(t *testing.T) {
	n, s, t2 := catalogueNetwork()
	total, err := flow.ShortestAugmentingPath(context.Background(), n, s, t2)
	require.NoError(t, err)
	require.Equal(t, 23.0, total)
}

func TestWidestAugmentingPath_AgreesWithShortest(t *testing.T) {
	n, s, t2 := catalogueNetwork()
	total, err := flow.WidestAugmentingPath(context.Background(), n, s, t2)
	require.NoError(t, err)
	require.Equal(t, 23.0, total)
}

func TestDinic_AgreesWithShortest(t *testing.T) {
	n, s, t2 := catalogueNetwork()
	total, err := flow.Dinic(context.Background(), n, s, t2)
	require.NoError(t, err)
	require.Equal(t, 23.0, total)
}

func TestPreflowPushFIFO_AgreesWithShortest(t *testing.T) {
	n, s, t2 := catalogueNetwork()
	total, err := flow.PreflowPushFIFO(context.Background(), n, s, t2)
	require.NoError(t, err)
	require.Equal(t, 23.0, total)
}

func TestPreflowPushHighestLabel_AgreesWithShortest(t *testing.T) {
	n, s, t2 := catalogueNetwork()
	total, err := flow.PreflowPushHighestLabel(context.Background(), n, s, t2)
	require.NoError(t, err)
	require.Equal(t, 23.0, total)
}

func TestPreflowPushRelabelToFront_AgreesWithShortest(t *testing.T) {
	n, s, t2 := catalogueNetwork()
	total, err := flow.PreflowPushRelabelToFront(context.Background(), n, s, t2)
	require.NoError(t, err)
	require.Equal(t, 23.0, total)
}

func TestSourceEqualsSink_ReturnsZero(t *testing.T) {
	pipes := []flow.Pipe{flow.NewDirectPipe(0, 1, 5)}
	n := flow.NewNetwork(2, pipes)
	total, err := flow.ShortestAugmentingPath(context.Background(), n, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, total)
}

func TestFlows_ConservesAtEveryInteriorNode(t *testing.T) {
	n, s, t2 := catalogueNetwork()
	_, err := flow.ShortestAugmentingPath(context.Background(), n, s, t2)
	require.NoError(t, err)

	in := make(map[int]float64)
	out := make(map[int]float64)
	for _, fe := range n.Flows() {
		out[fe.From] += fe.Flow
		in[fe.To] += fe.Flow
	}
	for v := 0; v < 6; v++ {
		if v == s || v == t2 {
			continue
		}
		require.InDelta(t, in[v], out[v], 1e-9)
	}
}

func TestBidirectPipe_ResidualsTransferOneToOne(t *testing.T) {
	p := flow.NewBidirectPipe(0, 1, 5, 5)
	require.Equal(t, 5.0, p.ResidualForward())
	require.Equal(t, 5.0, p.ResidualBackward())
	p.AddFlow(3)
	require.Equal(t, 2.0, p.ResidualForward())
	require.Equal(t, 8.0, p.ResidualBackward())
}

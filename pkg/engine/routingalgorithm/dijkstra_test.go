package routingalgorithm_test

import (
	"testing"

	"lintang/hospitalnav/pkg/datastructure"
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/engine/routingalgorithm"
	"lintang/hospitalnav/pkg/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toyGraph grid kecil di sekitar heidelberg. edge length = jarak great-circle * faktor >= 1 biar heuristic tetap admissible.
func toyGraph() *datastructure.Graph {
	g := datastructure.NewGraph("toy")
	coords := map[int64][2]float64{
		1: {49.4100, 8.6900},
		2: {49.4100, 8.6950},
		3: {49.4100, 8.7000},
		4: {49.4130, 8.6900},
		5: {49.4130, 8.6950},
		6: {49.4130, 8.7000},
		7: {49.4160, 8.6950},
	}
	for id, c := range coords {
		g.AddNode(datastructure.Node{ID: id, Lat: c[0], Lon: c[1]})
	}

	link := func(u, v int64, factor float64, name string) {
		cu, cv := coords[u], coords[v]
		length := geo.DistanceMeters(cu[0], cu[1], cv[0], cv[1]) * factor
		g.AddEdge(datastructure.Edge{From: u, To: v, Length: length, Names: []string{name}})
		g.AddEdge(datastructure.Edge{From: v, To: u, Length: length, Names: []string{name}})
	}
	link(1, 2, 1.0, "Bergheimer")
	link(2, 3, 1.0, "Bergheimer")
	link(1, 4, 1.3, "Mittermaier")
	link(4, 5, 1.1, "Rohrbacher")
	link(5, 6, 1.0, "Rohrbacher")
	link(2, 5, 4.0, "Sofien")
	link(3, 6, 1.0, "Kurfürsten")
	link(5, 7, 1.2, "Plöck")
	link(6, 7, 1.0, "Hauptstraße")
	return g
}

func TestDijkstraAndAStarAgree(t *testing.T) {
	g := toyGraph()
	rt := routingalgorithm.NewRouteAlgorithm(g)

	pairs := [][2]int64{{1, 7}, {7, 1}, {1, 6}, {4, 3}, {2, 7}, {3, 4}}
	for _, pair := range pairs {
		dij, err := rt.Dijkstra(pair[0], pair[1])
		require.NoError(t, err)
		astar, err := rt.AStar(pair[0], pair[1])
		require.NoError(t, err)

		assert.InDelta(t, dij.Length, astar.Length, 1e-6, "pair %v", pair)
		assert.Equal(t, pair[0], dij.Nodes[0])
		assert.Equal(t, pair[1], dij.Nodes[len(dij.Nodes)-1])
		assert.Equal(t, pair[0], astar.Nodes[0])
		assert.Equal(t, pair[1], astar.Nodes[len(astar.Nodes)-1])
		assert.InDelta(t, dij.Length, routingalgorithm.PathLength(g, dij.Nodes), 1e-6)
		assert.InDelta(t, astar.Length, routingalgorithm.PathLength(g, astar.Nodes), 1e-6)
	}
}

func TestDijkstraPicksCheaperDetour(t *testing.T) {
	g := toyGraph()
	rt := routingalgorithm.NewRouteAlgorithm(g)

	t.Run("direct sofien edge is more expensive than the detour", func(t *testing.T) {
		p, err := rt.Dijkstra(2, 5)
		require.NoError(t, err)
		assert.NotEqual(t, []int64{2, 5}, p.Nodes)
	})

	t.Run("same source and target", func(t *testing.T) {
		p, err := rt.Dijkstra(3, 3)
		require.NoError(t, err)
		assert.Equal(t, []int64{3}, p.Nodes)
		assert.Equal(t, 0.0, p.Length)

		p, err = rt.AStar(3, 3)
		require.NoError(t, err)
		assert.Equal(t, []int64{3}, p.Nodes)
	})
}

func TestParallelEdgesUseCheapest(t *testing.T) {
	g := datastructure.NewGraph("parallel")
	g.AddNode(datastructure.Node{ID: 1, Lat: 49.40, Lon: 8.69})
	g.AddNode(datastructure.Node{ID: 2, Lat: 49.40, Lon: 8.70})
	long := g.AddEdge(datastructure.Edge{From: 1, To: 2, Length: 2000})
	short := g.AddEdge(datastructure.Edge{From: 1, To: 2, Length: 800})
	assert.Equal(t, 0, long.Key)
	assert.Equal(t, 1, short.Key)

	rt := routingalgorithm.NewRouteAlgorithm(g)
	p, err := rt.Dijkstra(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 800.0, p.Length)

	p, err = rt.AStar(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 800.0, p.Length)
}

func TestNoPath(t *testing.T) {
	g := datastructure.NewGraph("disconnected")
	g.AddNode(datastructure.Node{ID: 1, Lat: 49.40, Lon: 8.69})
	g.AddNode(datastructure.Node{ID: 2, Lat: 49.40, Lon: 8.70})
	g.AddNode(datastructure.Node{ID: 3, Lat: 49.41, Lon: 8.70})
	g.AddEdge(datastructure.Edge{From: 1, To: 2, Length: 800})
	rt := routingalgorithm.NewRouteAlgorithm(g)

	t.Run("dijkstra", func(t *testing.T) {
		_, err := rt.Dijkstra(1, 3)
		assert.True(t, domain.IsCode(err, domain.ErrNoPathExists))
	})

	t.Run("astar", func(t *testing.T) {
		_, err := rt.AStar(2, 1)
		assert.True(t, domain.IsCode(err, domain.ErrNoPathExists))
	})

	t.Run("unknown node", func(t *testing.T) {
		_, err := rt.Dijkstra(1, 99)
		assert.True(t, domain.IsCode(err, domain.ErrDataNotFound))
	})
}

func TestShortestPathLengths(t *testing.T) {
	g := toyGraph()
	rt := routingalgorithm.NewRouteAlgorithm(g)

	dist, err := rt.ShortestPathLengths(1)
	require.NoError(t, err)
	assert.Len(t, dist, 7)
	assert.Equal(t, 0.0, dist[1])

	for _, target := range []int64{2, 3, 4, 5, 6, 7} {
		p, err := rt.Dijkstra(1, target)
		require.NoError(t, err)
		assert.InDelta(t, p.Length, dist[target], 1e-6)
	}
}

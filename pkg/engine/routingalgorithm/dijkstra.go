package routingalgorithm

import (
	"math"

	"lintang/hospitalnav/pkg/datastructure"
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/util"
)

type RoadGraph interface {
	HasNode(id int64) bool
	Node(id int64) (datastructure.Node, bool)
	OutEdges(id int64) []datastructure.Edge
}

type RouteAlgorithm struct {
	g RoadGraph
}

func NewRouteAlgorithm(g RoadGraph) *RouteAlgorithm {
	return &RouteAlgorithm{g: g}
}

// ShortestPath urutan node dari source ke target beserta total length (meter).
type ShortestPath struct {
	Nodes  []int64
	Length float64
}

type heuristicFunc func(nodeID int64) float64

func zeroHeuristic(int64) float64 { return 0 }

// Dijkstra shortest path dari -> ke, minimize jumlah edge length.
func (rt *RouteAlgorithm) Dijkstra(from, to int64) (ShortestPath, error) {
	return rt.search(from, to, zeroHeuristic)
}

// ShortestPathLengths single-source dijkstra, jarak ke semua node yang reachable dari from.
func (rt *RouteAlgorithm) ShortestPathLengths(from int64) (map[int64]float64, error) {
	if !rt.g.HasNode(from) {
		return nil, domain.NewErrorf(domain.ErrDataNotFound, "node %d is not in the road network", from)
	}
	dist := map[int64]float64{from: 0}
	settled := make(map[int64]struct{})
	pq := NewMinHeap[int64]()
	pq.Insert(PriorityQueueNode[int64]{Rank: 0, Item: from})

	for pq.Size() > 0 {
		curr, _ := pq.ExtractMin()
		settled[curr.Item] = struct{}{}

		for _, e := range rt.g.OutEdges(curr.Item) {
			if _, done := settled[e.To]; done {
				continue
			}
			newCost := dist[curr.Item] + e.Length
			if old, ok := dist[e.To]; ok && newCost >= old {
				continue
			}
			dist[e.To] = newCost
			pq.Upsert(PriorityQueueNode[int64]{Rank: newCost, Item: e.To})
		}
	}
	return dist, nil
}

// search best-first search. heuristic nol = dijkstra, heuristic admissible = A*.
// node yang sudah di-extract boleh dibuka lagi kalau ketemu cost lebih kecil, jadi heuristic yang admissible tapi tidak consistent tetap optimal.
func (rt *RouteAlgorithm) search(from, to int64, heuristic heuristicFunc) (ShortestPath, error) {
	if !rt.g.HasNode(from) {
		return ShortestPath{}, domain.NewErrorf(domain.ErrDataNotFound, "source node %d is not in the road network", from)
	}
	if !rt.g.HasNode(to) {
		return ShortestPath{}, domain.NewErrorf(domain.ErrDataNotFound, "target node %d is not in the road network", to)
	}
	if from == to {
		return ShortestPath{Nodes: []int64{from}, Length: 0}, nil
	}

	costSoFar := map[int64]float64{from: 0}
	cameFrom := map[int64]int64{}

	pq := NewMinHeap[int64]()
	pq.Insert(PriorityQueueNode[int64]{Rank: heuristic(from), Item: from})

	for pq.Size() > 0 {
		current, _ := pq.ExtractMin()
		if current.Item == to {
			return ShortestPath{
				Nodes:  rt.createPath(cameFrom, from, to),
				Length: costSoFar[to],
			}, nil
		}

		for _, e := range rt.g.OutEdges(current.Item) {
			newCost := costSoFar[current.Item] + e.Length
			if old, ok := costSoFar[e.To]; ok && newCost >= old {
				continue
			}
			costSoFar[e.To] = newCost
			cameFrom[e.To] = current.Item
			pq.Upsert(PriorityQueueNode[int64]{Rank: newCost + heuristic(e.To), Item: e.To})
		}
	}

	return ShortestPath{Length: math.Inf(1)}, domain.NewErrorf(domain.ErrNoPathExists, "no path from node %d to node %d", from, to)
}

func (rt *RouteAlgorithm) createPath(cameFrom map[int64]int64, from, to int64) []int64 {
	path := []int64{to}
	for v := to; v != from; {
		v = cameFrom[v]
		path = append(path, v)
	}
	util.ReverseG(path)
	return path
}

// PathLength total length path, pakai parallel edge paling pendek untuk tiap pasangan node.
func PathLength(g RoadGraph, path []int64) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		best := math.Inf(1)
		for _, e := range g.OutEdges(path[i]) {
			if e.To == path[i+1] && e.Length < best {
				best = e.Length
			}
		}
		total += best
	}
	return total
}

package datastructure

import (
	"sort"
)

const UnnamedRoad = "Unnamed Road"

// Edge road segment dari From ke To. Key membedakan parallel edge antara pasangan node yang sama (multigraph).
type Edge struct {
	From     int64
	To       int64
	Key      int
	Length   float64 // meter
	Names    []string
	Highway  string
	OneWay   bool
	OSMWayID int64
}

// RoadNames nama jalan edge, "Unnamed Road" kalau atribut name tidak ada.
func (e Edge) RoadNames() []string {
	if len(e.Names) == 0 {
		return []string{UnnamedRoad}
	}
	return e.Names
}

type Node struct {
	ID          int64
	Lat, Lon    float64
	StreetCount int
	Hospital    string // nama rumah sakit kalau node ini hasil annotation
}

func (n Node) IsHospital() bool {
	return n.Hospital != ""
}

// Graph directed multigraph road network.
type Graph struct {
	Name string

	nodes     map[int64]*Node
	outEdges  map[int64][]Edge
	edgeCount int
}

func NewGraph(name string) *Graph {
	return &Graph{
		Name:     name,
		nodes:    make(map[int64]*Node),
		outEdges: make(map[int64][]Edge),
	}
}

// AddNode insert node baru atau update lokasi node yang sudah ada.
func (g *Graph) AddNode(n Node) {
	if old, ok := g.nodes[n.ID]; ok {
		old.Lat = n.Lat
		old.Lon = n.Lon
		if n.StreetCount != 0 {
			old.StreetCount = n.StreetCount
		}
		if n.Hospital != "" {
			old.Hospital = n.Hospital
		}
		return
	}
	node := n
	g.nodes[n.ID] = &node
}

// AddEdge menambah edge e.From -> e.To. Key di-assign otomatis sesuai jumlah parallel edge yang sudah ada.
func (g *Graph) AddEdge(e Edge) Edge {
	if _, ok := g.nodes[e.From]; !ok {
		g.nodes[e.From] = &Node{ID: e.From}
	}
	if _, ok := g.nodes[e.To]; !ok {
		g.nodes[e.To] = &Node{ID: e.To}
	}
	e.Key = len(g.EdgesBetween(e.From, e.To))
	g.outEdges[e.From] = append(g.outEdges[e.From], e)
	g.edgeCount++
	return e
}

func (g *Graph) HasNode(id int64) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) Node(id int64) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

func (g *Graph) OutEdges(id int64) []Edge {
	return g.outEdges[id]
}

// EdgesBetween semua parallel edge u -> v, urut sesuai key.
func (g *Graph) EdgesBetween(u, v int64) []Edge {
	edges := []Edge{}
	for _, e := range g.outEdges[u] {
		if e.To == v {
			edges = append(edges, e)
		}
	}
	return edges
}

// EdgeData edge dengan key 0 antara u -> v.
func (g *Graph) EdgeData(u, v int64) (Edge, bool) {
	for _, e := range g.outEdges[u] {
		if e.To == v {
			return e, true
		}
	}
	return Edge{}, false
}

// NodeIDs semua node id, ascending.
func (g *Graph) NodeIDs() []int64 {
	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

func (g *Graph) NumEdges() int {
	return g.edgeCount
}

// TagHospital menandai node sebagai lokasi rumah sakit. Tag lama ditimpa.
func (g *Graph) TagHospital(id int64, name string) bool {
	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	n.Hospital = name
	return true
}

// HospitalNodes node yang sudah di-tag, ascending by id.
func (g *Graph) HospitalNodes() []Node {
	hospitals := []Node{}
	for _, id := range g.NodeIDs() {
		if n := g.nodes[id]; n.IsHospital() {
			hospitals = append(hospitals, *n)
		}
	}
	return hospitals
}

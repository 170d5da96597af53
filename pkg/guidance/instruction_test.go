package guidance_test

import (
	"testing"

	"lintang/hospitalnav/pkg/datastructure"
	"lintang/hospitalnav/pkg/guidance"

	"github.com/stretchr/testify/assert"
)

func TestFormatPath(t *testing.T) {
	t.Run("empty sequence", func(t *testing.T) {
		assert.Equal(t, "No roads available.", guidance.FormatPath(nil))
		assert.Equal(t, "No roads available.", guidance.FormatPath([]string{}))
	})

	t.Run("single road only gets the start phrase", func(t *testing.T) {
		got := guidance.FormatPath([]string{"Berliner Straße"})
		assert.NotEmpty(t, got)
		assert.Equal(t, "Start by taking Berliner Straße road", got)
	})

	t.Run("two roads", func(t *testing.T) {
		got := guidance.FormatPath([]string{"Berliner Straße", "Im Neuenheimer Feld"})
		assert.Equal(t, "Start by taking Berliner Straße road and finally, take Im Neuenheimer Feld road to reach your destination.", got)
	})

	t.Run("interior roads", func(t *testing.T) {
		got := guidance.FormatPath([]string{"Rohrbacher Straße", "Unnamed Road", "Speyerer Straße", "Czernyring"})
		assert.Equal(t, "Start by taking Rohrbacher Straße road then continue on Unnamed Road road then continue on Speyerer Straße road and finally, take Czernyring road to reach your destination.", got)
	})
}

func TestSimplifyPath(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", []string{}, []string{}},
		{"adjacent duplicates merged", []string{"A", "A", "B", "B", "B", "C"}, []string{"A", "B", "C"}},
		{"non adjacent duplicates kept", []string{"A", "B", "A"}, []string{"A", "B", "A"}},
		{"single", []string{"A"}, []string{"A"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := guidance.SimplifyPath(tc.in)
			assert.Equal(t, tc.want, got)
			// idempotent
			assert.Equal(t, got, guidance.SimplifyPath(got))
		})
	}
}

func namedGraph() *datastructure.Graph {
	g := datastructure.NewGraph("names")
	for i := int64(1); i <= 5; i++ {
		g.AddNode(datastructure.Node{ID: i, Lat: 49.40 + float64(i)*0.001, Lon: 8.69})
	}
	g.AddEdge(datastructure.Edge{From: 1, To: 2, Length: 100, Names: []string{"Hauptstraße"}})
	g.AddEdge(datastructure.Edge{From: 2, To: 3, Length: 100, Names: []string{"Hauptstraße", "Plöck"}})
	g.AddEdge(datastructure.Edge{From: 3, To: 4, Length: 100})
	g.AddEdge(datastructure.Edge{From: 4, To: 5, Length: 300, Names: []string{"Sofienstraße"}})
	g.AddEdge(datastructure.Edge{From: 4, To: 5, Length: 120, Names: []string{"Bismarckplatz"}})
	return g
}

func TestPathRoadNames(t *testing.T) {
	g := namedGraph()

	t.Run("list names expand and missing names become unnamed road", func(t *testing.T) {
		got := guidance.PathRoadNames(g, []int64{1, 2, 3, 4})
		assert.Equal(t, []string{"Hauptstraße", "Hauptstraße", "Plöck", datastructure.UnnamedRoad}, got)
		assert.Equal(t, []string{"Hauptstraße", "Plöck", datastructure.UnnamedRoad}, guidance.SimplifyPath(got))
	})

	t.Run("parallel edges use the key 0 edge even when a later one is shorter", func(t *testing.T) {
		assert.Equal(t, []string{"Sofienstraße"}, guidance.PathRoadNames(g, []int64{4, 5}))
	})

	t.Run("key 0 edge name for differently named parallel edges", func(t *testing.T) {
		pg := datastructure.NewGraph("parallel")
		pg.AddNode(datastructure.Node{ID: 1, Lat: 49.4090, Lon: 8.6880})
		pg.AddNode(datastructure.Node{ID: 2, Lat: 49.4080, Lon: 8.6800})
		pg.AddEdge(datastructure.Edge{From: 1, To: 2, Length: 900, Names: []string{"Bergheimer Straße"}})
		pg.AddEdge(datastructure.Edge{From: 1, To: 2, Length: 800, Names: []string{"Czernyring"}})

		assert.Equal(t, []string{"Bergheimer Straße"}, guidance.PathRoadNames(pg, []int64{1, 2}))
		instr, _ := guidance.Directions(pg, []int64{1, 2})
		assert.Equal(t, "Start by taking Bergheimer Straße road", instr)
	})

	t.Run("pairs without an edge are skipped", func(t *testing.T) {
		assert.Equal(t, []string{"Hauptstraße"}, guidance.PathRoadNames(g, []int64{1, 2, 5}))
	})

	t.Run("single node path", func(t *testing.T) {
		assert.Empty(t, guidance.PathRoadNames(g, []int64{1}))
		instr, roads := guidance.Directions(g, []int64{1})
		assert.Empty(t, roads)
		assert.Equal(t, guidance.NoRoadsAvailable, instr)
	})
}

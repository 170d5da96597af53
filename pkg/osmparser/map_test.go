package osmparser_test

import (
	"testing"

	"lintang/hospitalnav/pkg/geo"
	"lintang/hospitalnav/pkg/osmparser"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(id osm.NodeID, lat, lon float64, tags ...osm.Tag) *osm.Node {
	return &osm.Node{ID: id, Lat: lat, Lon: lon, Tags: tags}
}

func way(id osm.WayID, nodeIDs []osm.NodeID, tags ...osm.Tag) *osm.Way {
	wn := make(osm.WayNodes, len(nodeIDs))
	for i, n := range nodeIDs {
		wn[i] = osm.WayNode{ID: n}
	}
	return &osm.Way{ID: id, Nodes: wn, Tags: tags}
}

func TestIsDrivable(t *testing.T) {
	cases := []struct {
		name string
		tags osm.Tags
		want bool
	}{
		{"residential", osm.Tags{{Key: "highway", Value: "residential"}}, true},
		{"primary", osm.Tags{{Key: "highway", Value: "primary"}, {Key: "name", Value: "Berliner Straße"}}, true},
		{"footway", osm.Tags{{Key: "highway", Value: "footway"}}, false},
		{"no highway", osm.Tags{{Key: "building", Value: "yes"}}, false},
		{"private access", osm.Tags{{Key: "highway", Value: "residential"}, {Key: "access", Value: "private"}}, false},
		{"motorcar no", osm.Tags{{Key: "highway", Value: "tertiary"}, {Key: "motorcar", Value: "no"}}, false},
		{"area", osm.Tags{{Key: "highway", Value: "unclassified"}, {Key: "area", Value: "yes"}}, false},
		{"parking aisle", osm.Tags{{Key: "highway", Value: "unclassified"}, {Key: "service", Value: "parking_aisle"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, osmparser.IsDrivable(tc.tags))
		})
	}
}

func heidelbergExtract() *osmparser.Extract {
	e := osmparser.NewExtract()
	objs := []osm.Object{
		node(1, 49.4100, 8.6900),
		node(2, 49.4105, 8.6920),
		node(3, 49.4110, 8.6940),
		node(4, 49.4115, 8.6960),
		node(5, 49.4090, 8.6940),
		node(6, 49.4130, 8.6940),
		node(7, 49.4120, 8.6980, osm.Tag{Key: "amenity", Value: "hospital"}, osm.Tag{Key: "name", Value: "Universitätsklinikum"}),
		way(100, []osm.NodeID{1, 2, 3, 4}, osm.Tag{Key: "highway", Value: "secondary"}, osm.Tag{Key: "name", Value: "Bergheimer Straße"}),
		way(101, []osm.NodeID{5, 3, 6}, osm.Tag{Key: "highway", Value: "residential"}, osm.Tag{Key: "oneway", Value: "yes"}),
		way(102, []osm.NodeID{6, 4}, osm.Tag{Key: "highway", Value: "tertiary"}, osm.Tag{Key: "oneway", Value: "-1"}),
		way(103, []osm.NodeID{1, 5}, osm.Tag{Key: "highway", Value: "footway"}),
		// node 99 di luar extract
		way(104, []osm.NodeID{4, 99}, osm.Tag{Key: "highway", Value: "residential"}),
	}
	for _, o := range objs {
		e.AddObject(o)
	}
	return e
}

func TestBuildGraph(t *testing.T) {
	e := heidelbergExtract()
	require.Len(t, e.Ways, 4)

	g := e.BuildGraph("heidelberg")

	t.Run("intermediate nodes are merged into the edge", func(t *testing.T) {
		assert.False(t, g.HasNode(2))
		assert.ElementsMatch(t, []int64{1, 3, 4, 5, 6}, g.NodeIDs())

		edge, ok := g.EdgeData(1, 3)
		require.True(t, ok)
		want := geo.DistanceMeters(49.4100, 8.6900, 49.4105, 8.6920) + geo.DistanceMeters(49.4105, 8.6920, 49.4110, 8.6940)
		assert.InDelta(t, want, edge.Length, 1e-6)
		assert.Equal(t, []string{"Bergheimer Straße"}, edge.Names)
		assert.Equal(t, int64(100), edge.OSMWayID)

		_, ok = g.EdgeData(3, 1)
		assert.True(t, ok)
	})

	t.Run("oneway", func(t *testing.T) {
		_, ok := g.EdgeData(5, 3)
		assert.True(t, ok)
		_, ok = g.EdgeData(3, 5)
		assert.False(t, ok)

		edge, ok := g.EdgeData(3, 6)
		require.True(t, ok)
		assert.True(t, edge.OneWay)
		assert.Empty(t, edge.Names)
	})

	t.Run("reversed oneway", func(t *testing.T) {
		_, ok := g.EdgeData(4, 6)
		assert.True(t, ok)
		_, ok = g.EdgeData(6, 4)
		assert.False(t, ok)
	})

	t.Run("street count", func(t *testing.T) {
		n, ok := g.Node(3)
		require.True(t, ok)
		assert.Equal(t, 4, n.StreetCount)

		n, ok = g.Node(1)
		require.True(t, ok)
		assert.Equal(t, 1, n.StreetCount)
	})

	assert.Equal(t, 7, g.NumEdges())
}

func TestHospitalSet(t *testing.T) {
	e := heidelbergExtract()
	hospitals := e.HospitalSet()
	require.Len(t, hospitals, 1)
	assert.Equal(t, "Universitätsklinikum", hospitals[0].Name)
	assert.Equal(t, 49.4120, hospitals[0].Lat)
	assert.Equal(t, "hospital", hospitals[0].Properties["amenity"])
	assert.Equal(t, int64(7), hospitals[0].Properties["osmid"])
}

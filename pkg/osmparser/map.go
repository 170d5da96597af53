package osmparser

import (
	"fmt"
	"sort"

	"lintang/hospitalnav/pkg/datastructure"
	"lintang/hospitalnav/pkg/geo"

	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/osm"
	"github.com/schollz/progressbar/v3"
)

// highway value yang tidak bisa dilewati mobil (filter network_type drive osmnx)
var excludedHighway = map[string]bool{
	"abandoned":    true,
	"bridleway":    true,
	"bus_guideway": true,
	"construction": true,
	"corridor":     true,
	"cycleway":     true,
	"elevator":     true,
	"escalator":    true,
	"footway":      true,
	"no":           true,
	"path":         true,
	"pedestrian":   true,
	"planned":      true,
	"platform":     true,
	"proposed":     true,
	"raceway":      true,
	"razed":        true,
	"service":      true,
	"steps":        true,
	"track":        true,
}

var excludedService = map[string]bool{
	"alley":            true,
	"driveway":         true,
	"emergency_access": true,
	"parking":          true,
	"parking_aisle":    true,
	"private":          true,
}

// IsDrivable apakah way dengan tags ini bagian dari drivable road network.
func IsDrivable(tags osm.Tags) bool {
	highway := tags.Find("highway")
	if highway == "" || excludedHighway[highway] {
		return false
	}
	if tags.Find("area") == "yes" || tags.Find("access") == "private" {
		return false
	}
	if tags.Find("motor_vehicle") == "no" || tags.Find("motorcar") == "no" {
		return false
	}
	return !excludedService[tags.Find("service")]
}

// IsHospital node amenity=hospital.
func IsHospital(tags osm.Tags) bool {
	return tags.Find("amenity") == "hospital"
}

// oneWay return (oneway, reversed).
func oneWay(tags osm.Tags) (bool, bool) {
	switch tags.Find("oneway") {
	case "yes", "true", "1":
		return true, false
	case "-1", "reverse":
		return true, true
	}
	return tags.Find("junction") == "roundabout", false
}

// Extract hasil scan openstreetmap untuk satu place: node, drivable way, & hospital node.
type Extract struct {
	Nodes     map[osm.NodeID]*osm.Node
	Ways      []*osm.Way
	Hospitals []*osm.Node
}

func NewExtract() *Extract {
	return &Extract{
		Nodes: make(map[osm.NodeID]*osm.Node),
	}
}

// AddObject simpan node, drivable way, & hospital node. object lain diabaikan.
func (e *Extract) AddObject(o osm.Object) {
	switch obj := o.(type) {
	case *osm.Node:
		e.Nodes[obj.ID] = obj
		if IsHospital(obj.Tags) {
			e.Hospitals = append(e.Hospitals, obj)
		}
	case *osm.Way:
		if IsDrivable(obj.Tags) {
			e.Ways = append(e.Ways, obj)
		}
	}
}

// runs potong node way jadi beberapa run node yang lokasinya diketahui (way yang ke-clip bbox).
func (e *Extract) runs(way *osm.Way) [][]*osm.Node {
	runs := [][]*osm.Node{}
	curr := []*osm.Node{}
	for _, wn := range way.Nodes {
		n, ok := e.Nodes[wn.ID]
		if !ok {
			if len(curr) >= 2 {
				runs = append(runs, curr)
			}
			curr = []*osm.Node{}
			continue
		}
		curr = append(curr, n)
	}
	if len(curr) >= 2 {
		runs = append(runs, curr)
	}
	return runs
}

// BuildGraph bikin road network graph dari drivable way. node yang disimpan hanya ujung way & intersection (node yang dipakai >= 2 kali),
// node di antaranya digabung jadi satu edge dengan length = jumlah jarak great-circle tiap segment.
func (e *Extract) BuildGraph(name string) *datastructure.Graph {
	g := datastructure.NewGraph(name)

	usedInRoad := make(map[osm.NodeID]int)
	endpoints := make(map[osm.NodeID]struct{})
	wayRuns := make([][][]*osm.Node, len(e.Ways))
	for i, way := range e.Ways {
		wayRuns[i] = e.runs(way)
		for _, run := range wayRuns[i] {
			endpoints[run[0].ID] = struct{}{}
			endpoints[run[len(run)-1].ID] = struct{}{}
			for _, n := range run {
				usedInRoad[n.ID]++
			}
		}
	}
	isIntersection := func(id osm.NodeID) bool {
		_, ok := endpoints[id]
		return ok || usedInRoad[id] >= 2
	}

	bar := progressbar.NewOptions(len(e.Ways),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan][2/3][reset] building road network %s ...", name)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	streetCount := make(map[int64]int)
	for i, way := range e.Ways {
		isOneWay, reversed := oneWay(way.Tags)
		names := []string{}
		if roadName := way.Tags.Find("name"); roadName != "" {
			names = append(names, roadName)
		}
		highway := way.Tags.Find("highway")

		for _, run := range wayRuns[i] {
			from := run[0]
			length := 0.0
			for j := 1; j < len(run); j++ {
				prev, curr := run[j-1], run[j]
				length += geo.DistanceMeters(prev.Lat, prev.Lon, curr.Lat, curr.Lon)
				if !isIntersection(curr.ID) {
					continue
				}

				g.AddNode(datastructure.Node{ID: int64(from.ID), Lat: from.Lat, Lon: from.Lon})
				g.AddNode(datastructure.Node{ID: int64(curr.ID), Lat: curr.Lat, Lon: curr.Lon})
				edge := datastructure.Edge{
					From:     int64(from.ID),
					To:       int64(curr.ID),
					Length:   length,
					Names:    names,
					Highway:  highway,
					OneWay:   isOneWay,
					OSMWayID: int64(way.ID),
				}
				if !isOneWay || !reversed {
					g.AddEdge(edge)
				}
				if !isOneWay || reversed {
					edge.From, edge.To = edge.To, edge.From
					g.AddEdge(edge)
				}
				streetCount[int64(from.ID)]++
				streetCount[int64(curr.ID)]++

				from = curr
				length = 0
			}
		}
		bar.Add(1)
	}
	fmt.Println("")

	for id, count := range streetCount {
		n, _ := g.Node(id)
		n.StreetCount = count
		g.AddNode(n)
	}
	return g
}

// HospitalSet hospital node sebagai point feature. urutan sesuai osm id biar deterministik.
func (e *Extract) HospitalSet() datastructure.HospitalSet {
	nodes := make([]*osm.Node, len(e.Hospitals))
	copy(nodes, e.Hospitals)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	hospitals := make(datastructure.HospitalSet, 0, len(nodes))
	for _, n := range nodes {
		props := make(map[string]interface{}, len(n.Tags)+1)
		for _, tag := range n.Tags {
			props[tag.Key] = tag.Value
		}
		props["osmid"] = int64(n.ID)
		hospitals = append(hospitals, datastructure.Hospital{
			Name:       n.Tags.Find("name"),
			Lat:        n.Lat,
			Lon:        n.Lon,
			Properties: props,
		})
	}
	return hospitals
}

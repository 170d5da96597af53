package graphml

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"lintang/hospitalnav/pkg/datastructure"
	"lintang/hospitalnav/pkg/domain"

	"github.com/beevik/etree"
)

const graphmlNamespace = "http://graphml.graphdrawing.org/xmlns"

// attribute key yang ditulis. nama attribute sama dengan graphml osmnx jadi file bisa dibaca bolak-balik.
type attrKey struct {
	id    string
	scope string
	name  string
}

var writeKeys = []attrKey{
	{"d0", "graph", "name"},
	{"d1", "node", "y"},
	{"d2", "node", "x"},
	{"d3", "node", "street_count"},
	{"d4", "node", "hospital"},
	{"d5", "edge", "osmid"},
	{"d6", "edge", "name"},
	{"d7", "edge", "highway"},
	{"d8", "edge", "oneway"},
	{"d9", "edge", "length"},
}

func keyID(scope, name string) string {
	for _, k := range writeKeys {
		if k.scope == scope && k.name == name {
			return k.id
		}
	}
	return ""
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func addData(parent *etree.Element, scope, name, value string) {
	data := parent.CreateElement("data")
	data.CreateAttr("key", keyID(scope, name))
	data.SetText(value)
}

// Encode graph ke graphml document.
func Encode(g *datastructure.Graph) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement("graphml")
	root.CreateAttr("xmlns", graphmlNamespace)
	for _, k := range writeKeys {
		key := root.CreateElement("key")
		key.CreateAttr("id", k.id)
		key.CreateAttr("for", k.scope)
		key.CreateAttr("attr.name", k.name)
		key.CreateAttr("attr.type", "string")
	}

	graph := root.CreateElement("graph")
	graph.CreateAttr("edgedefault", "directed")
	addData(graph, "graph", "name", g.Name)

	ids := g.NodeIDs()
	for _, id := range ids {
		n, _ := g.Node(id)
		node := graph.CreateElement("node")
		node.CreateAttr("id", strconv.FormatInt(id, 10))
		addData(node, "node", "y", formatFloat(n.Lat))
		addData(node, "node", "x", formatFloat(n.Lon))
		addData(node, "node", "street_count", strconv.Itoa(n.StreetCount))
		if n.IsHospital() {
			addData(node, "node", "hospital", n.Hospital)
		}
	}

	for _, id := range ids {
		for _, e := range g.OutEdges(id) {
			edge := graph.CreateElement("edge")
			edge.CreateAttr("source", strconv.FormatInt(e.From, 10))
			edge.CreateAttr("target", strconv.FormatInt(e.To, 10))
			edge.CreateAttr("id", strconv.Itoa(e.Key))
			addData(edge, "edge", "osmid", strconv.FormatInt(e.OSMWayID, 10))
			switch len(e.Names) {
			case 0:
			case 1:
				addData(edge, "edge", "name", e.Names[0])
			default:
				addData(edge, "edge", "name", formatList(e.Names))
			}
			if e.Highway != "" {
				addData(edge, "edge", "highway", e.Highway)
			}
			addData(edge, "edge", "oneway", pyBool(e.OneWay))
			addData(edge, "edge", "length", formatFloat(e.Length))
		}
	}

	doc.Indent(2)
	return doc
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// WriteFile simpan graph ke path.
func WriteFile(g *datastructure.Graph, path string) error {
	if err := Encode(g).WriteToFile(path); err != nil {
		return domain.WrapErrorf(err, domain.ErrInternal, "write graphml %s", path)
	}
	return nil
}

// ReadFile load graph dari path. file tidak ada / rusak -> ErrDataNotFound.
func ReadFile(path string) (*datastructure.Graph, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.WrapErrorf(err, domain.ErrDataNotFound, "graph file %s not found", path)
		}
		return nil, domain.WrapErrorf(err, domain.ErrDataNotFound, "graph file %s is not readable", path)
	}
	g, err := Decode(doc)
	if err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrDataNotFound, "graph file %s is malformed", path)
	}
	return g, nil
}

// Decode baca graphml document. key attribute dicocokkan lewat attr.name, bukan id, jadi file osmnx juga bisa dibaca.
func Decode(doc *etree.Document) (*datastructure.Graph, error) {
	root := doc.SelectElement("graphml")
	if root == nil {
		return nil, errors.New("missing graphml root element")
	}
	keyNames := make(map[string]string)
	for _, key := range root.SelectElements("key") {
		keyNames[key.SelectAttrValue("id", "")] = key.SelectAttrValue("attr.name", "")
	}

	graph := root.SelectElement("graph")
	if graph == nil {
		return nil, errors.New("missing graph element")
	}

	attrs := func(el *etree.Element) map[string]string {
		m := make(map[string]string)
		for _, data := range el.SelectElements("data") {
			name, ok := keyNames[data.SelectAttrValue("key", "")]
			if !ok {
				continue
			}
			m[name] = data.Text()
		}
		return m
	}

	g := datastructure.NewGraph(attrs(graph)["name"])

	for _, el := range graph.SelectElements("node") {
		id, err := strconv.ParseInt(el.SelectAttrValue("id", ""), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("node id: %w", err)
		}
		a := attrs(el)
		lat, err := strconv.ParseFloat(a["y"], 64)
		if err != nil {
			return nil, fmt.Errorf("node %d y: %w", id, err)
		}
		lon, err := strconv.ParseFloat(a["x"], 64)
		if err != nil {
			return nil, fmt.Errorf("node %d x: %w", id, err)
		}
		streetCount, _ := strconv.Atoi(a["street_count"])
		g.AddNode(datastructure.Node{
			ID:          id,
			Lat:         lat,
			Lon:         lon,
			StreetCount: streetCount,
			Hospital:    a["hospital"],
		})
	}

	for _, el := range graph.SelectElements("edge") {
		from, err := strconv.ParseInt(el.SelectAttrValue("source", ""), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("edge source: %w", err)
		}
		to, err := strconv.ParseInt(el.SelectAttrValue("target", ""), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("edge target: %w", err)
		}
		if !g.HasNode(from) || !g.HasNode(to) {
			return nil, fmt.Errorf("edge %d -> %d references unknown node", from, to)
		}
		a := attrs(el)
		length, err := strconv.ParseFloat(a["length"], 64)
		if err != nil {
			return nil, fmt.Errorf("edge %d -> %d length: %w", from, to, err)
		}

		edge := datastructure.Edge{
			From:    from,
			To:      to,
			Length:  length,
			Highway: a["highway"],
			OneWay:  strings.EqualFold(a["oneway"], "true"),
		}
		if name, ok := a["name"]; ok && strings.TrimSpace(name) != "" {
			// <data> kosong = tidak ada nama
			for _, n := range parseList(name) {
				if n != "" {
					edge.Names = append(edge.Names, n)
				}
			}
		}
		if osmid, ok := a["osmid"]; ok {
			// edge hasil simplifikasi osmnx bisa punya list osmid, ambil yang pertama
			if ids := parseList(osmid); len(ids) > 0 {
				edge.OSMWayID, _ = strconv.ParseInt(ids[0], 10, 64)
			}
		}
		g.AddEdge(edge)
	}
	return g, nil
}

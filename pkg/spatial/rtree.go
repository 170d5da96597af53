package spatial

import (
	"math"

	"lintang/hospitalnav/pkg/datastructure"
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/geo"

	"github.com/dhconnelly/rtreego"
)

// meter, di plane hasil proyeksi
var tol = 0.01

// jumlah kandidat awal dari rtree sebelum dipilih ulang pakai jarak great-circle.
const nearestCandidates = 8

// toleransi proyeksi equirectangular vs great-circle (small-angle approximation).
const projectionSlack = 0.995

// NodeRect node graph di plane equirectangular (meter). Lat, Lon koordinat asli.
type NodeRect struct {
	Location rtreego.Point
	Lat, Lon float64
	NodeID   int64
}

func (n *NodeRect) Bounds() rtreego.Rect {
	// rectangle centered at location dengan side lengths 2 * tol
	return n.Location.ToRect(tol)
}

type NodeSource interface {
	NodeIDs() []int64
	Node(id int64) (datastructure.Node, bool)
}

// NodeIndex rtree semua node graph buat nearest node lookup.
// node diproyeksikan ke plane equirectangular dengan satu latitude referensi (rata-rata latitude node),
// jadi jarak euclidean di rtree ~ jarak di permukaan bumi, bukan jarak derajat lat/lon.
type NodeIndex struct {
	tree      *rtreego.Rtree
	size      int
	cosRef    float64
	maxAbsLat float64
}

func NewNodeIndex(g NodeSource) *NodeIndex {
	ids := g.NodeIDs()
	nodes := make([]datastructure.Node, 0, len(ids))
	sumLat, maxAbsLat := 0.0, 0.0
	for _, id := range ids {
		n, _ := g.Node(id)
		nodes = append(nodes, n)
		sumLat += n.Lat
		maxAbsLat = math.Max(maxAbsLat, math.Abs(n.Lat))
	}

	idx := &NodeIndex{cosRef: 1, maxAbsLat: maxAbsLat, size: len(nodes)}
	if len(nodes) > 0 {
		idx.cosRef = math.Cos(sumLat / float64(len(nodes)) * math.Pi / 180)
	}

	objs := make([]rtreego.Spatial, 0, len(nodes))
	for _, n := range nodes {
		objs = append(objs, &NodeRect{
			Location: idx.project(n.Lat, n.Lon),
			Lat:      n.Lat,
			Lon:      n.Lon,
			NodeID:   n.ID,
		})
	}
	idx.tree = rtreego.NewTree(2, 25, 50, objs...) // 2 dimension, 25 min entries dan 50 max entries
	return idx
}

func (idx *NodeIndex) Size() int {
	return idx.size
}

func (idx *NodeIndex) project(lat, lon float64) rtreego.Point {
	return rtreego.Point{
		geo.EarthRadiusMeters * lon * math.Pi / 180 * idx.cosRef,
		geo.EarthRadiusMeters * lat * math.Pi / 180,
	}
}

// lowerBoundFactor faktor pengali jarak plane supaya <= jarak great-circle untuk query di latitude lat.
// skala longitude plane pakai cosRef, di latitude yang lebih jauh dari ekuator skalanya lebih kecil.
func (idx *NodeIndex) lowerBoundFactor(lat float64) float64 {
	maxAbsLat := math.Max(idx.maxAbsLat, math.Abs(lat))
	cosLow := math.Cos(maxAbsLat * math.Pi / 180)
	f := 1.0
	if idx.cosRef > 0 && cosLow < idx.cosRef {
		f = cosLow / idx.cosRef
	}
	return f * projectionSlack
}

// NearestNode node graph terdekat (great-circle) dari lat, lon.
// kandidat rtree diperbanyak sampai kandidat terjauh pasti lebih jauh dari yang terbaik.
func (idx *NodeIndex) NearestNode(lat, lon float64) (int64, error) {
	if idx.size == 0 {
		return 0, domain.NewErrorf(domain.ErrDataNotFound, "road network has no nodes")
	}
	wantToSnap := idx.project(lat, lon)
	query := geo.NewLocation(lat, lon)
	factor := idx.lowerBoundFactor(lat)

	for k := nearestCandidates; ; k *= 2 {
		candidates := idx.tree.NearestNeighbors(k, wantToSnap)

		bestID := int64(0)
		bestDist := -1.0
		found := 0
		farthest := 0.0
		for _, c := range candidates {
			if c == nil {
				continue
			}
			found++
			nr := c.(*NodeRect)
			farthest = math.Max(farthest, planarDistance(wantToSnap, nr.Location))
			dist := geo.GreatCircleDistance(query, geo.NewLocation(nr.Lat, nr.Lon))
			if bestDist < 0 || dist < bestDist || (dist == bestDist && nr.NodeID < bestID) {
				bestDist = dist
				bestID = nr.NodeID
			}
		}
		if bestDist < 0 {
			return 0, domain.NewErrorf(domain.ErrDataNotFound, "no road network node near (%f, %f)", lat, lon)
		}
		// semua node sudah jadi kandidat, atau node di luar k kandidat pasti lebih jauh
		if found < k || k >= idx.size || (farthest-tol)*factor > bestDist {
			return bestID, nil
		}
	}
}

func planarDistance(a, b rtreego.Point) float64 {
	return math.Hypot(a[0]-b[0], a[1]-b[1])
}

package service

import (
	"context"

	"lintang/hospitalnav/pkg/config"
	"lintang/hospitalnav/pkg/datastructure"
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/engine/routingalgorithm"
	"lintang/hospitalnav/pkg/geocoder"
	"lintang/hospitalnav/pkg/guidance"
	"lintang/hospitalnav/pkg/spatial"
	"lintang/hospitalnav/pkg/util"

	"github.com/rs/zerolog/log"
	"github.com/twpayne/go-polyline"
)

type Geocoder interface {
	Geocode(ctx context.Context, query string) (geocoder.Result, error)
}

type NavigationService struct {
	g         *datastructure.Graph
	idx       *spatial.NodeIndex
	rt        *routingalgorithm.RouteAlgorithm
	hospitals HospitalSource
	geocoder  Geocoder
}

func NewNavigationService(g *datastructure.Graph, hospitals HospitalSource, gc Geocoder) *NavigationService {
	return &NavigationService{
		g:         g,
		idx:       spatial.NewNodeIndex(g),
		rt:        routingalgorithm.NewRouteAlgorithm(g),
		hospitals: hospitals,
		geocoder:  gc,
	}
}

// HospitalMatch hospital terdekat dari titik awal.
type HospitalMatch struct {
	Hospital  Candidate
	StartNode int64
	Distance  float64 // meter, shortest path
}

// NearestHospital hospital dengan jarak shortest path terkecil dari node terdekat (lat, lon).
func (uc *NavigationService) NearestHospital(lat, lon float64) (HospitalMatch, error) {
	if err := config.Validate(datastructure.NewCoordinate(lat, lon)); err != nil {
		return HospitalMatch{}, err
	}
	startNode, err := uc.idx.NearestNode(lat, lon)
	if err != nil {
		return HospitalMatch{}, err
	}
	candidates, err := uc.hospitals.Candidates(uc.g, uc.idx)
	if err != nil {
		return HospitalMatch{}, err
	}
	best, dist, err := SelectNearest(uc.rt, startNode, candidates)
	if err != nil {
		return HospitalMatch{}, err
	}
	return HospitalMatch{Hospital: best, StartNode: startNode, Distance: dist}, nil
}

// ShortestPaths shortest path from -> to dengan dijkstra & A*.
func (uc *NavigationService) ShortestPaths(from, to int64) (routingalgorithm.ShortestPath, routingalgorithm.ShortestPath, error) {
	dijkstra, err := uc.rt.Dijkstra(from, to)
	if err != nil {
		return routingalgorithm.ShortestPath{}, routingalgorithm.ShortestPath{}, err
	}
	astar, err := uc.rt.AStar(from, to)
	if err != nil {
		return routingalgorithm.ShortestPath{}, routingalgorithm.ShortestPath{}, err
	}
	return dijkstra, astar, nil
}

// Route rute & instruksi satu algoritma.
type Route struct {
	Path         []int64
	Roads        []string
	Instructions string
	Distance     float64 // meter
	Polyline     string
}

type RouteResult struct {
	Query    datastructure.Coordinate
	Hospital HospitalMatch
	Dijkstra Route
	AStar    Route
}

func (uc *NavigationService) newRoute(p routingalgorithm.ShortestPath) Route {
	instructions, roads := guidance.Directions(uc.g, p.Nodes)
	return Route{
		Path:         p.Nodes,
		Roads:        roads,
		Instructions: instructions,
		Distance:     util.RoundFloat(p.Length, 2), // cm
		Polyline:     uc.renderPath(p.Nodes),
	}
}

func (uc *NavigationService) renderPath(path []int64) string {
	coords := make([][]float64, 0, len(path))
	for _, id := range path {
		n, _ := uc.g.Node(id)
		coords = append(coords, []float64{n.Lat, n.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

// RouteToNearestHospital cari hospital terdekat dari (lat, lon) & instruksi rute ke sana (dijkstra & A*).
func (uc *NavigationService) RouteToNearestHospital(lat, lon float64) (RouteResult, error) {
	match, err := uc.NearestHospital(lat, lon)
	if err != nil {
		return RouteResult{}, err
	}
	dijkstra, astar, err := uc.ShortestPaths(match.StartNode, match.Hospital.NodeID)
	if err != nil {
		return RouteResult{}, err
	}
	log.Debug().Str("hospital", match.Hospital.Name).Int64("start_node", match.StartNode).
		Int64("hospital_node", match.Hospital.NodeID).Float64("distance", dijkstra.Length).
		Int("dijkstra_nodes", len(dijkstra.Nodes)).Int("astar_nodes", len(astar.Nodes)).
		Msg("route to nearest hospital")

	return RouteResult{
		Query:    datastructure.NewCoordinate(lat, lon),
		Hospital: match,
		Dijkstra: uc.newRoute(dijkstra),
		AStar:    uc.newRoute(astar),
	}, nil
}

// RouteFromAddress geocode alamat lalu RouteToNearestHospital.
func (uc *NavigationService) RouteFromAddress(ctx context.Context, address string) (RouteResult, error) {
	if uc.geocoder == nil {
		return RouteResult{}, domain.NewErrorf(domain.ErrGeocodeFailure, "no geocoder configured")
	}
	loc, err := uc.geocoder.Geocode(ctx, address)
	if err != nil {
		return RouteResult{}, err
	}
	log.Info().Str("address", address).Stringer("location", loc).Msg("address geocoded")
	return uc.RouteToNearestHospital(loc.Lat, loc.Lon)
}

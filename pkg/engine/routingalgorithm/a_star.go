package routingalgorithm

import (
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/geo"
)

// AStar shortest path dengan heuristic jarak great-circle (meter) dari node ke target.
// heuristic admissible selama edge length >= jarak great-circle antar ujungnya, dan itu selalu benar untuk jalan.
func (rt *RouteAlgorithm) AStar(from, to int64) (ShortestPath, error) {
	target, ok := rt.g.Node(to)
	if !ok {
		return ShortestPath{}, domain.NewErrorf(domain.ErrDataNotFound, "target node %d is not in the road network", to)
	}
	targetLoc := geo.NewLocation(target.Lat, target.Lon)

	heuristic := func(nodeID int64) float64 {
		n, ok := rt.g.Node(nodeID)
		if !ok {
			return 0
		}
		return geo.GreatCircleDistance(geo.NewLocation(n.Lat, n.Lon), targetLoc)
	}
	return rt.search(from, to, heuristic)
}

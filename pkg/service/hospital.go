package service

import (
	"lintang/hospitalnav/pkg/datastructure"
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/engine/routingalgorithm"
)

// Candidate hospital beserta node graph-nya.
type Candidate struct {
	Name   string
	NodeID int64
}

type NodeLocator interface {
	NearestNode(lat, lon float64) (int64, error)
}

// HospitalSource penyedia kandidat hospital, urutan kandidat menentukan tie-break.
type HospitalSource interface {
	Candidates(g *datastructure.Graph, idx NodeLocator) ([]Candidate, error)
}

// FeatureHospitals kandidat dari hospital feature set, node-nya dicari ulang (nearest node) setiap kali.
type FeatureHospitals struct {
	Hospitals datastructure.HospitalSet
}

func (fh FeatureHospitals) Candidates(g *datastructure.Graph, idx NodeLocator) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(fh.Hospitals))
	for _, h := range fh.Hospitals {
		nodeID, err := idx.NearestNode(h.Lat, h.Lon)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{Name: h.Name, NodeID: nodeID})
	}
	return candidates, nil
}

// TaggedHospitals kandidat dari node yang sudah di-tag waktu annotation, urut node id.
type TaggedHospitals struct{}

func (TaggedHospitals) Candidates(g *datastructure.Graph, _ NodeLocator) ([]Candidate, error) {
	nodes := g.HospitalNodes()
	candidates := make([]Candidate, 0, len(nodes))
	for _, n := range nodes {
		candidates = append(candidates, Candidate{Name: n.Hospital, NodeID: n.ID})
	}
	return candidates, nil
}

// SelectNearest pilih kandidat dengan jarak shortest path terkecil dari node from.
// kalau jaraknya sama, kandidat pertama yang menang. kandidat yang tidak reachable di-skip.
func SelectNearest(rt *routingalgorithm.RouteAlgorithm, from int64, candidates []Candidate) (Candidate, float64, error) {
	if len(candidates) == 0 {
		return Candidate{}, 0, domain.NewErrorf(domain.ErrNoHospitalsAvailable, "no hospitals available")
	}
	dist, err := rt.ShortestPathLengths(from)
	if err != nil {
		return Candidate{}, 0, err
	}

	best := Candidate{}
	bestDist := -1.0
	for _, c := range candidates {
		d, ok := dist[c.NodeID]
		if !ok {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best = c
			bestDist = d
		}
	}
	if bestDist < 0 {
		return Candidate{}, 0, domain.NewErrorf(domain.ErrNoPathExists, "no hospital is reachable from node %d", from)
	}
	return best, bestDist, nil
}

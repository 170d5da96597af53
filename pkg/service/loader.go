package service

import (
	"lintang/hospitalnav/pkg/config"
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/features"
	"lintang/hospitalnav/pkg/graphml"

	"github.com/rs/zerolog/log"
)

// LoadNavigationService load {city}_mapped.graphml (dan hospital feature set kalau hospital_source = features).
func LoadNavigationService(cfg *config.Config, gc Geocoder) (*NavigationService, error) {
	paths := cfg.Paths()
	g, err := graphml.ReadFile(paths.MappedGraph)
	if err != nil {
		return nil, err
	}

	var source HospitalSource
	switch cfg.Routing.HospitalSource {
	case config.HospitalSourceFeatures:
		hospitals, err := features.ReadHospitals(paths.Hospitals)
		if err != nil {
			return nil, err
		}
		source = FeatureHospitals{Hospitals: hospitals}
	case config.HospitalSourceTagged, "":
		source = TaggedHospitals{}
	default:
		return nil, domain.NewErrorf(domain.ErrBadParamInput, "unknown hospital source %q", cfg.Routing.HospitalSource)
	}

	log.Info().Str("city", cfg.City).Int("nodes", g.NumNodes()).Int("edges", g.NumEdges()).
		Str("hospital_source", cfg.Routing.HospitalSource).Msg("road network loaded")
	return NewNavigationService(g, source, gc), nil
}

package acquisition

import (
	"context"
	"os"
	"path/filepath"

	"lintang/hospitalnav/pkg/config"
	"lintang/hospitalnav/pkg/datastructure"
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/features"
	"lintang/hospitalnav/pkg/geo"
	"lintang/hospitalnav/pkg/geocoder"
	"lintang/hospitalnav/pkg/graphml"
	"lintang/hospitalnav/pkg/osmparser"

	"github.com/rs/zerolog/log"
)

type Collector struct {
	source      Source
	geocoder    geocoder.Geocoder
	bboxPadding float64
}

func NewCollector(source Source, gc geocoder.Geocoder, bboxPadding float64) *Collector {
	return &Collector{source: source, geocoder: gc, bboxPadding: bboxPadding}
}

type Result struct {
	Graph             *datastructure.Graph
	Hospitals         datastructure.HospitalSet
	DroppedProperties []string
}

// ResolvePlace geocode nama place ke bounding box, diperbesar sebesar bbox padding.
func (c *Collector) ResolvePlace(ctx context.Context, placeName string) (Place, error) {
	res, err := c.geocoder.Geocode(ctx, placeName)
	if err != nil {
		return Place{}, err
	}
	return Place{
		Name: placeName,
		BBox: geo.PadBound(res.BBox, c.bboxPadding),
	}, nil
}

// Collect ambil hospital & drivable road network untuk placeName, lalu simpan ke paths.Hospitals & paths.Graph.
func (c *Collector) Collect(ctx context.Context, placeName, city string, paths config.Paths) (Result, error) {
	place, err := c.ResolvePlace(ctx, placeName)
	if err != nil {
		return Result{}, err
	}
	log.Info().Str("place", placeName).
		Float64("min_lat", place.BBox.Min.Lat()).Float64("min_lon", place.BBox.Min.Lon()).
		Float64("max_lat", place.BBox.Max.Lat()).Float64("max_lon", place.BBox.Max.Lon()).
		Msg("fetching openstreetmap data")

	extract, err := c.source.Fetch(ctx, place)
	if err != nil {
		return Result{}, err
	}
	return c.save(extract, city, paths)
}

func (c *Collector) save(extract *osmparser.Extract, city string, paths config.Paths) (Result, error) {
	g := extract.BuildGraph(city)
	log.Info().Str("city", city).Int("nodes", g.NumNodes()).Int("edges", g.NumEdges()).Msg("road network built")
	if g.NumNodes() == 0 {
		return Result{}, domain.NewErrorf(domain.ErrDataNotFound, "no drivable roads found for %s", city)
	}

	fc := features.PointsOnly(features.FromHospitals(extract.HospitalSet()))
	dropped := features.DropListProperties(fc)
	hospitals := features.ToHospitals(fc)
	if len(hospitals) == 0 {
		log.Warn().Str("city", city).Msg("no hospitals found")
	}

	for _, path := range []string{paths.Hospitals, paths.Graph} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return Result{}, domain.WrapErrorf(err, domain.ErrInternal, "create data directory for %s", path)
		}
	}
	if err := features.WriteFile(fc, paths.Hospitals); err != nil {
		return Result{}, err
	}
	if err := graphml.WriteFile(g, paths.Graph); err != nil {
		return Result{}, err
	}
	log.Info().Str("hospitals", paths.Hospitals).Str("graph", paths.Graph).Int("hospital_count", len(hospitals)).Msg("data saved")

	return Result{Graph: g, Hospitals: hospitals, DroppedProperties: dropped}, nil
}

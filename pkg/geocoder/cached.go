package geocoder

import (
	"context"

	"lintang/hospitalnav/pkg/kv"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"
)

type Cache interface {
	GetGeocode(query string) (kv.GeocodeEntry, bool, error)
	SaveGeocode(query string, entry kv.GeocodeEntry) error
}

// Cached geocoder yang menyimpan hasil ke cache. error cache cuma di-log, geocoding tetap jalan.
type Cached struct {
	next  Geocoder
	cache Cache
}

func NewCached(next Geocoder, cache Cache) *Cached {
	return &Cached{next: next, cache: cache}
}

func (c *Cached) Geocode(ctx context.Context, query string) (Result, error) {
	entry, ok, err := c.cache.GetGeocode(query)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("geocode cache lookup failed")
	}
	if ok {
		log.Debug().Str("query", query).Msg("geocode cache hit")
		return fromEntry(entry), nil
	}

	res, err := c.next.Geocode(ctx, query)
	if err != nil {
		return Result{}, err
	}
	if err := c.cache.SaveGeocode(query, toEntry(res)); err != nil {
		log.Warn().Err(err).Str("query", query).Msg("geocode cache save failed")
	}
	return res, nil
}

func toEntry(r Result) kv.GeocodeEntry {
	return kv.GeocodeEntry{
		Lat:         r.Lat,
		Lon:         r.Lon,
		BBox:        []float64{r.BBox.Min.Lat(), r.BBox.Max.Lat(), r.BBox.Min.Lon(), r.BBox.Max.Lon()},
		DisplayName: r.DisplayName,
	}
}

func fromEntry(e kv.GeocodeEntry) Result {
	res := Result{
		Lat:         e.Lat,
		Lon:         e.Lon,
		BBox:        orb.Point{e.Lon, e.Lat}.Bound(),
		DisplayName: e.DisplayName,
	}
	if len(e.BBox) == 4 {
		res.BBox = orb.Bound{
			Min: orb.Point{e.BBox[2], e.BBox[0]},
			Max: orb.Point{e.BBox[3], e.BBox[1]},
		}
	}
	return res
}

package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// EarthRadiusMeters mean earth radius (IUGG), sama dengan yang dipakai osmnx.
const EarthRadiusMeters = 6371008.8

type Location struct {
	Latitude  float64
	Longitude float64
}

func NewLocation(lat, lon float64) Location {
	return Location{
		Latitude:  lat,
		Longitude: lon,
	}
}

func (l Location) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(l.Latitude, l.Longitude)
}

// GreatCircleDistance jarak great-circle dalam meter antara 2 titik.
func GreatCircleDistance(from, to Location) float64 {
	return from.latLng().Distance(to.latLng()).Radians() * EarthRadiusMeters
}

// DistanceMeters shortcut GreatCircleDistance dari lat/lon mentah.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return GreatCircleDistance(NewLocation(lat1, lon1), NewLocation(lat2, lon2))
}

// PadBound memperbesar bounding box sebesar paddingMeters ke semua arah.
func PadBound(b orb.Bound, paddingMeters float64) orb.Bound {
	if paddingMeters <= 0 {
		return b
	}
	dLat := radToDeg(paddingMeters / EarthRadiusMeters)
	midLat := (b.Min.Lat() + b.Max.Lat()) / 2
	cosLat := math.Cos(degToRad(midLat))
	dLon := dLat
	if cosLat > 1e-9 {
		dLon = dLat / cosLat
	}
	return orb.Bound{
		Min: orb.Point{b.Min.Lon() - dLon, b.Min.Lat() - dLat},
		Max: orb.Point{b.Max.Lon() + dLon, b.Max.Lat() + dLat},
	}
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180.0
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}

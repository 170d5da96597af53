package geocoder

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"lintang/hospitalnav/pkg/domain"

	"github.com/bytedance/sonic"
	"github.com/gojek/heimdall/v7/httpclient"
	"github.com/paulmach/orb"
)

const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

// Result lokasi hasil geocoding.
type Result struct {
	Lat         float64
	Lon         float64
	BBox        orb.Bound
	DisplayName string
}

type Geocoder interface {
	Geocode(ctx context.Context, query string) (Result, error)
}

type nominatimPlace struct {
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	DisplayName string   `json:"display_name"`
	BoundingBox []string `json:"boundingbox"` // [south, north, west, east]
}

type Nominatim struct {
	baseURL   string
	userAgent string
	client    *httpclient.Client
}

func NewNominatim(baseURL, userAgent string, timeout time.Duration) *Nominatim {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	return &Nominatim{
		baseURL:   baseURL,
		userAgent: userAgent,
		client: httpclient.NewClient(
			httpclient.WithHTTPTimeout(timeout),
			httpclient.WithRetryCount(2),
		),
	}
}

// Geocode free-text query -> koordinat (hasil pertama nominatim).
func (n *Nominatim) Geocode(ctx context.Context, query string) (Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return Result{}, domain.WrapErrorf(err, domain.ErrGeocodeFailure, "build geocode request for '%s'", query)
	}
	req.Header.Set("Accept", "application/json")
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}

	res, err := n.client.Do(req)
	if err != nil {
		return Result{}, domain.WrapErrorf(err, domain.ErrGeocodeFailure, "could not geocode '%s'", query)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Result{}, domain.NewErrorf(domain.ErrGeocodeFailure, "could not geocode '%s': geocoder returned %s", query, res.Status)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return Result{}, domain.WrapErrorf(err, domain.ErrGeocodeFailure, "could not geocode '%s'", query)
	}

	var places []nominatimPlace
	if err := sonic.Unmarshal(body, &places); err != nil {
		return Result{}, domain.WrapErrorf(err, domain.ErrGeocodeFailure, "could not geocode '%s': malformed response", query)
	}
	if len(places) == 0 {
		return Result{}, domain.NewErrorf(domain.ErrGeocodeFailure, "could not geocode '%s': no results", query)
	}
	return places[0].toResult()
}

func (p nominatimPlace) toResult() (Result, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return Result{}, domain.WrapErrorf(err, domain.ErrGeocodeFailure, "invalid latitude %q", p.Lat)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return Result{}, domain.WrapErrorf(err, domain.ErrGeocodeFailure, "invalid longitude %q", p.Lon)
	}

	res := Result{
		Lat:         lat,
		Lon:         lon,
		BBox:        orb.Point{lon, lat}.Bound(),
		DisplayName: p.DisplayName,
	}
	if len(p.BoundingBox) == 4 {
		bbox := [4]float64{}
		for i, s := range p.BoundingBox {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return Result{}, domain.WrapErrorf(err, domain.ErrGeocodeFailure, "invalid bounding box %v", p.BoundingBox)
			}
			bbox[i] = v
		}
		res.BBox = orb.Bound{
			Min: orb.Point{bbox[2], bbox[0]},
			Max: orb.Point{bbox[3], bbox[1]},
		}
	}
	return res, nil
}

func (r Result) String() string {
	return fmt.Sprintf("%s (%.6f, %.6f)", r.DisplayName, r.Lat, r.Lon)
}

package acquisition

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"runtime"
	"strings"
	"time"

	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/osmparser"

	"github.com/gojek/heimdall/v7/httpclient"
	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/schollz/progressbar/v3"
)

// Place area yang datanya diambil.
type Place struct {
	Name string
	BBox orb.Bound
}

// Source penyedia data openstreetmap untuk satu place.
type Source interface {
	Fetch(ctx context.Context, place Place) (*osmparser.Extract, error)
}

// PBFSource baca openstreetmap dari file .osm.pbf lokal, hanya object di dalam bbox place.
type PBFSource struct {
	File string
}

func NewPBFSource(file string) *PBFSource {
	return &PBFSource{File: file}
}

func (s *PBFSource) Fetch(ctx context.Context, place Place) (*osmparser.Extract, error) {
	f, err := os.Open(s.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.WrapErrorf(err, domain.ErrDataNotFound, "openstreetmap file %s not found", s.File)
		}
		return nil, domain.WrapErrorf(err, domain.ErrDataNotFound, "openstreetmap file %s is not readable", s.File)
	}
	defer f.Close()

	scanner := osmpbf.New(ctx, f, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipRelations = true

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan][1/3][reset] memproses openstreetmap %s ...", s.File)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	extract := osmparser.NewExtract()
	count := 0
	for scanner.Scan() {
		o := scanner.Object()
		if node, ok := o.(*osm.Node); ok && !place.BBox.Contains(node.Point()) {
			continue
		}
		extract.AddObject(o)
		count++
		if count%50000 == 0 {
			bar.Add(50000)
		}
	}
	fmt.Println("")

	if err := scanner.Err(); err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrDataNotFound, "openstreetmap file %s is malformed", s.File)
	}
	return extract, nil
}

const DefaultOverpassURL = "https://overpass-api.de/api/interpreter"

// OverpassSource ambil openstreetmap lewat overpass api (response osm xml).
type OverpassSource struct {
	url    string
	client *httpclient.Client
}

func NewOverpassSource(overpassURL string, timeout time.Duration) *OverpassSource {
	if overpassURL == "" {
		overpassURL = DefaultOverpassURL
	}
	return &OverpassSource{
		url: overpassURL,
		client: httpclient.NewClient(
			httpclient.WithHTTPTimeout(timeout),
			httpclient.WithRetryCount(2),
		),
	}
}

// OverpassQuery semua way highway & node amenity=hospital di bbox, beserta node yang direferensikan way.
func OverpassQuery(bbox orb.Bound) string {
	b := fmt.Sprintf("%f,%f,%f,%f", bbox.Min.Lat(), bbox.Min.Lon(), bbox.Max.Lat(), bbox.Max.Lon())
	return fmt.Sprintf(`[out:xml][timeout:180];(way["highway"](%s);node["amenity"="hospital"](%s););(._;>;);out body;`, b, b)
}

func (s *OverpassSource) Fetch(ctx context.Context, place Place) (*osmparser.Extract, error) {
	form := url.Values{}
	form.Set("data", OverpassQuery(place.BBox))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrDataNotFound, "overpass request for %s failed", place.Name)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, domain.NewErrorf(domain.ErrDataNotFound, "overpass request for %s failed: %s", place.Name, res.Status)
	}

	scanner := osmxml.New(ctx, res.Body)
	defer scanner.Close()

	extract := osmparser.NewExtract()
	for scanner.Scan() {
		extract.AddObject(scanner.Object())
	}
	if err := scanner.Err(); err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrDataNotFound, "overpass response for %s is malformed", place.Name)
	}
	return extract, nil
}

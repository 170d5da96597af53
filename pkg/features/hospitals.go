package features

import (
	"errors"
	"io/fs"
	"os"
	"reflect"
	"sort"

	"lintang/hospitalnav/pkg/datastructure"
	"lintang/hospitalnav/pkg/domain"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const UnnamedHospital = "Unnamed Hospital"

// FromHospitals hospital set -> geojson point feature collection. properties ikut ditulis, "name" selalu ada.
func FromHospitals(hospitals datastructure.HospitalSet) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, h := range hospitals {
		f := geojson.NewFeature(orb.Point{h.Lon, h.Lat})
		for k, v := range h.Properties {
			f.Properties[k] = v
		}
		f.Properties["name"] = h.Name
		fc.Append(f)
	}
	return fc
}

// PointsOnly buang feature yang geometry-nya bukan point (mis. rumah sakit yang dipetakan sebagai polygon).
func PointsOnly(fc *geojson.FeatureCollection) *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()
	for _, f := range fc.Features {
		if _, ok := f.Geometry.(orb.Point); ok {
			out.Append(f)
		}
	}
	return out
}

func isListValue(v interface{}) bool {
	if v == nil {
		return false
	}
	kind := reflect.TypeOf(v).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// DropListProperties hapus property yang di salah satu feature bernilai list, dari semua feature.
// file geojson hasilnya jadi punya kolom flat.
func DropListProperties(fc *geojson.FeatureCollection) []string {
	drop := map[string]struct{}{}
	for _, f := range fc.Features {
		for k, v := range f.Properties {
			if isListValue(v) {
				drop[k] = struct{}{}
			}
		}
	}
	dropped := make([]string, 0, len(drop))
	for k := range drop {
		dropped = append(dropped, k)
		for _, f := range fc.Features {
			delete(f.Properties, k)
		}
	}
	sort.Strings(dropped)
	return dropped
}

func WriteFile(fc *geojson.FeatureCollection, path string) error {
	bb, err := fc.MarshalJSON()
	if err != nil {
		return domain.WrapErrorf(err, domain.ErrInternal, "encode hospital features")
	}
	if err := os.WriteFile(path, bb, 0o644); err != nil {
		return domain.WrapErrorf(err, domain.ErrInternal, "write hospital features %s", path)
	}
	return nil
}

// ReadHospitals load hospital point feature dari geojson file, urutan sesuai file.
// feature selain point di-skip. nama kosong -> "Unnamed Hospital".
func ReadHospitals(path string) (datastructure.HospitalSet, error) {
	bb, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.WrapErrorf(err, domain.ErrDataNotFound, "hospital features %s not found", path)
		}
		return nil, domain.WrapErrorf(err, domain.ErrDataNotFound, "hospital features %s is not readable", path)
	}
	fc, err := geojson.UnmarshalFeatureCollection(bb)
	if err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrDataNotFound, "hospital features %s is malformed", path)
	}
	return ToHospitals(fc), nil
}

func ToHospitals(fc *geojson.FeatureCollection) datastructure.HospitalSet {
	hospitals := datastructure.HospitalSet{}
	for _, f := range fc.Features {
		p, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}
		name := f.Properties.MustString("name", "")
		if name == "" {
			name = UnnamedHospital
		}
		props := make(map[string]interface{}, len(f.Properties))
		for k, v := range f.Properties {
			props[k] = v
		}
		hospitals = append(hospitals, datastructure.Hospital{
			Name:       name,
			Lat:        p.Lat(),
			Lon:        p.Lon(),
			Properties: props,
		})
	}
	return hospitals
}

package features_test

import (
	"os"
	"path/filepath"
	"testing"

	"lintang/hospitalnav/pkg/datastructure"
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/features"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadHospitals(t *testing.T) {
	hospitals := datastructure.HospitalSet{
		{Name: "Universitätsklinikum Heidelberg", Lat: 49.4177, Lon: 8.6700, Properties: map[string]interface{}{"amenity": "hospital"}},
		{Name: "", Lat: 49.3960, Lon: 8.6850, Properties: map[string]interface{}{"amenity": "hospital"}},
		{Name: "St. Josefskrankenhaus", Lat: 49.4030, Lon: 8.6890},
	}
	path := filepath.Join(t.TempDir(), "heidelberg_hospitals.geojson")
	require.NoError(t, features.WriteFile(features.FromHospitals(hospitals), path))

	got, err := features.ReadHospitals(path)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []string{"Universitätsklinikum Heidelberg", features.UnnamedHospital, "St. Josefskrankenhaus"}, got.Names())
	assert.Equal(t, 49.4177, got[0].Lat)
	assert.Equal(t, 8.6700, got[0].Lon)
	assert.Equal(t, "hospital", got[0].Properties["amenity"])
}

func TestPointsOnly(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Point{8.67, 49.41}))
	fc.Append(geojson.NewFeature(orb.Polygon{{{8.67, 49.41}, {8.68, 49.41}, {8.68, 49.42}, {8.67, 49.41}}}))
	fc.Append(geojson.NewFeature(orb.Point{8.69, 49.40}))

	assert.Len(t, features.PointsOnly(fc).Features, 2)
	// polygon juga di-skip waktu konversi ke hospital set
	assert.Len(t, features.ToHospitals(fc), 2)
}

func TestDropListProperties(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	a := geojson.NewFeature(orb.Point{8.67, 49.41})
	a.Properties["name"] = "A"
	a.Properties["nodes"] = []interface{}{1, 2}
	a.Properties["healthcare"] = "hospital"
	b := geojson.NewFeature(orb.Point{8.68, 49.42})
	b.Properties["name"] = "B"
	b.Properties["nodes"] = "single"
	fc.Append(a)
	fc.Append(b)

	dropped := features.DropListProperties(fc)
	assert.Equal(t, []string{"nodes"}, dropped)
	assert.NotContains(t, a.Properties, "nodes")
	assert.NotContains(t, b.Properties, "nodes")
	assert.Equal(t, "hospital", a.Properties["healthcare"])
}

func TestReadHospitalsErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := features.ReadHospitals(filepath.Join(t.TempDir(), "missing.geojson"))
		assert.True(t, domain.IsCode(err, domain.ErrDataNotFound))
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.geojson")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := features.ReadHospitals(path)
		assert.True(t, domain.IsCode(err, domain.ErrDataNotFound))
	})
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"lintang/hospitalnav/pkg/domain"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefix environment variable override, mis. HOSPITALNAV_CITY, HOSPITALNAV_GEOCODER_URL.
const EnvPrefix = "HOSPITALNAV"

type LogConfig struct {
	Level      string `yaml:"level" envconfig:"LEVEL" validate:"oneof=trace debug info warn error"`
	Format     string `yaml:"format" envconfig:"FORMAT" validate:"oneof=console json"`
	Output     string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout stderr file"`
	FilePath   string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_if=Output file"`
	TimeFormat string `yaml:"time_format" envconfig:"TIME_FORMAT"`
}

type AcquisitionConfig struct {
	Source      string        `yaml:"source" envconfig:"SOURCE" validate:"oneof=pbf overpass"`
	PBFFile     string        `yaml:"pbf_file" envconfig:"PBF_FILE" validate:"required_if=Source pbf"`
	OverpassURL string        `yaml:"overpass_url" envconfig:"OVERPASS_URL" validate:"required_if=Source overpass,omitempty,url"`
	BBoxPadding float64       `yaml:"bbox_padding" envconfig:"BBOX_PADDING" validate:"gte=0"` // meter
	Timeout     time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"gt=0"`             // overpass request timeout
}

type GeocoderConfig struct {
	URL       string        `yaml:"url" envconfig:"URL" validate:"required,url"`
	UserAgent string        `yaml:"user_agent" envconfig:"USER_AGENT" validate:"required"`
	Timeout   time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"gt=0"`
	CacheDir  string        `yaml:"cache_dir" envconfig:"CACHE_DIR"` // kosong = tanpa cache
}

const (
	HospitalSourceTagged   = "tagged"
	HospitalSourceFeatures = "features"
)

type RoutingConfig struct {
	HospitalSource string `yaml:"hospital_source" envconfig:"HOSPITAL_SOURCE" validate:"oneof=tagged features"`
}

// Scenario titik awal evaluasi.
type Scenario struct {
	Name string  `yaml:"name" validate:"required"`
	Lat  float64 `yaml:"lat" validate:"lt=90,gt=-90"`
	Lon  float64 `yaml:"lon" validate:"lt=180,gt=-180"`
}

type EvaluationConfig struct {
	Scenarios   []Scenario `yaml:"scenarios" ignored:"true" validate:"required,min=1,dive"`
	MetricsFile string     `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

type Config struct {
	City        string            `yaml:"city" envconfig:"CITY" validate:"required"`
	Place       string            `yaml:"place" envconfig:"PLACE" validate:"required"`
	DataDir     string            `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	Acquisition AcquisitionConfig `yaml:"acquisition" envconfig:"ACQUISITION"`
	Geocoder    GeocoderConfig    `yaml:"geocoder" envconfig:"GEOCODER"`
	Routing     RoutingConfig     `yaml:"routing" envconfig:"ROUTING"`
	Evaluation  EvaluationConfig  `yaml:"evaluation" envconfig:"EVALUATION"`
	Log         LogConfig         `yaml:"log" envconfig:"LOG"`
}

// DefaultScenarios lima titik awal di heidelberg.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "Neuenheim (North Heidelberg)", Lat: 49.4217, Lon: 8.6815},
		{Name: "Heidelberg Zoo (West Heidelberg)", Lat: 49.4183, Lon: 8.6691},
		{Name: "Heidelberg-Süd (South Heidelberg)", Lat: 49.4039, Lon: 8.6732},
		{Name: "Handschuhsheim (North-East Heidelberg)", Lat: 49.4265, Lon: 8.6893},
		{Name: "Boxberg (South-West Heidelberg)", Lat: 49.3750, Lon: 8.6936},
	}
}

func Default() *Config {
	return &Config{
		City:    "heidelberg",
		Place:   "Heidelberg, Germany",
		DataDir: "data",
		Acquisition: AcquisitionConfig{
			Source:      "overpass",
			OverpassURL: "https://overpass-api.de/api/interpreter",
			BBoxPadding: 500,
			Timeout:     3 * time.Minute,
		},
		Geocoder: GeocoderConfig{
			URL:       "https://nominatim.openstreetmap.org",
			UserAgent: "hospitalnav",
			Timeout:   10 * time.Second,
		},
		Routing: RoutingConfig{
			HospitalSource: HospitalSourceTagged,
		},
		Evaluation: EvaluationConfig{
			Scenarios: DefaultScenarios(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
	}
}

// Load config: default -> yaml file (kalau path tidak kosong) -> .env & environment variable -> validasi.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, domain.WrapErrorf(err, domain.ErrDataNotFound, "config file %s not found", path)
			}
			return nil, domain.WrapErrorf(err, domain.ErrDataNotFound, "error reading config file %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, domain.WrapErrorf(err, domain.ErrBadParamInput, "error parsing config file %s", path)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, domain.WrapErrorf(err, domain.ErrBadParamInput, "error loading .env file")
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrBadParamInput, "error processing environment configuration")
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Paths lokasi file data untuk satu kota.
type Paths struct {
	Hospitals   string // {city}_hospitals.geojson
	Graph       string // {city}.graphml
	MappedGraph string // {city}_mapped.graphml
}

func PathsFor(dataDir, city string) Paths {
	return Paths{
		Hospitals:   filepath.Join(dataDir, fmt.Sprintf("%s_hospitals.geojson", city)),
		Graph:       filepath.Join(dataDir, fmt.Sprintf("%s.graphml", city)),
		MappedGraph: filepath.Join(dataDir, fmt.Sprintf("%s_mapped.graphml", city)),
	}
}

func (c *Config) Paths() Paths {
	return PathsFor(c.DataDir, c.City)
}

package geocoder

import (
	"lintang/hospitalnav/pkg/config"
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/kv"
)

// FromConfig nominatim geocoder, dibungkus cache pebble kalau cache_dir diisi. close harus dipanggil setelah selesai.
func FromConfig(cfg config.GeocoderConfig) (Geocoder, func() error, error) {
	nominatim := NewNominatim(cfg.URL, cfg.UserAgent, cfg.Timeout)
	if cfg.CacheDir == "" {
		return nominatim, func() error { return nil }, nil
	}

	db, err := kv.OpenKVDB(cfg.CacheDir, nil)
	if err != nil {
		return nil, nil, domain.WrapErrorf(err, domain.ErrInternal, "open geocode cache %s", cfg.CacheDir)
	}
	return NewCached(nominatim, db), db.Close, nil
}
